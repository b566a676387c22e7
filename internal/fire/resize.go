package fire

import (
	"fmt"

	"github.com/san-kum/fireplace/internal/grid"
)

// Resize reallocates every buffer for a rows x cols display. The fire lives
// at the bottom of the screen, so grids are flipped, copied top-left and
// flipped back: whatever sat on the old bottom edge lands on the new one.
// The height record drops to 0 so the next frame recomputes and redraws
// everything. A zero dimension yields an inert, empty engine.
func (e *Engine) Resize(rows, cols int) error {
	field, err := resizeFromBottom(e.field, rows, cols)
	if err != nil {
		return fmt.Errorf("resize field: %w", err)
	}
	scratch, err := resizeFromBottom(e.scratch, rows, cols)
	if err != nil {
		return fmt.Errorf("resize scratch: %w", err)
	}

	e.field, e.scratch = field, scratch
	e.heater.Resize(cols)
	e.plate.Resize(cols)
	e.rows, e.cols = rows, cols
	e.heightRecord = 0
	return nil
}

func resizeFromBottom(g *grid.Grid, rows, cols int) (*grid.Grid, error) {
	g.Flip()
	resized, err := g.Resize(rows, cols, grid.CopyTopLeft)
	if err != nil {
		g.Flip()
		return nil, err
	}
	resized.Flip()
	return resized, nil
}
