package sim

import (
	"time"

	"github.com/san-kum/fireplace/internal/fire"
	"github.com/san-kum/fireplace/internal/grid"
)

// Live keys understood by the runner. Displays translate arrows and
// interrupt keys into these.
const (
	KeyQuit   = 'q'
	KeyHotter = 'k'
	KeyCooler = 'j'
)

// Frame is everything a display needs to draw one frame.
type Frame struct {
	Field   *grid.Grid
	Glyph   rune
	MaxTemp int
	// From is the first row that may hold heat. Rows above it are cold
	// and need no redraw.
	From int
}

type Display interface {
	Size() (rows, cols int)
	Resize(rows, cols int)
	Render(f Frame) error
	Clear()
	// PollKey returns the next pending key without blocking.
	PollKey() (rune, bool)
}

type Metric interface {
	Name() string
	Observe(e *fire.Engine)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(e *fire.Engine)
}

type Config struct {
	Glyph       rune
	FramePeriod time.Duration
	// MaxFrames stops the runner after that many frames; 0 runs forever.
	MaxFrames int
}
