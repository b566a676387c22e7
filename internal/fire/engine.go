package fire

import (
	"fmt"

	"github.com/san-kum/fireplace/internal/grid"
	"github.com/san-kum/fireplace/internal/heater"
	"github.com/san-kum/fireplace/internal/hotplate"
)

const (
	DefaultMaxTemp = 10

	reach   = 3 // columns sampled either side
	above   = 1 // rows sampled above
	below   = 3 // rows sampled below
	samples = (2*reach + 1) * (above + below + 1)

	// coldMargin is how far above the height record Step still recomputes.
	coldMargin = 3
)

type Options struct {
	MaxTemp     int
	Rule        heater.Rule
	FlickerOdds int
	// Source drives the heater and the cooldown. Nil uses math/rand.
	Source Source
}

func DefaultOptions() Options {
	return Options{
		MaxTemp:     DefaultMaxTemp,
		Rule:        heater.DefaultRule,
		FlickerOdds: heater.DefaultFlickerOdds,
	}
}

type Engine struct {
	rows, cols int
	maxTemp    int

	field   *grid.Grid
	scratch *grid.Grid
	heater  *heater.Automaton
	plate   *hotplate.Plate

	heightRecord int
	frame        int
	src          Source
}

// New allocates every buffer for a rows x cols display.
func New(rows, cols int, opts Options) (*Engine, error) {
	if opts.MaxTemp < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrMaxTemp, opts.MaxTemp)
	}
	src := opts.Source
	if src == nil {
		src = globalSource{}
	}

	field, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("allocate field: %w", err)
	}
	scratch, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("allocate scratch: %w", err)
	}

	h := heater.New(cols, opts.Rule, src)
	h.SetFlickerOdds(opts.FlickerOdds)

	return &Engine{
		rows:         rows,
		cols:         cols,
		maxTemp:      opts.MaxTemp,
		field:        field,
		scratch:      scratch,
		heater:       h,
		plate:        hotplate.New(cols),
		heightRecord: rows,
		src:          src,
	}, nil
}

func (e *Engine) Rows() int                 { return e.rows }
func (e *Engine) Cols() int                 { return e.cols }
func (e *Engine) MaxTemp() int              { return e.maxTemp }
func (e *Engine) Frame() int                { return e.frame }
func (e *Engine) Field() *grid.Grid         { return e.field }
func (e *Engine) Heater() *heater.Automaton { return e.heater }
func (e *Engine) Plate() *hotplate.Plate    { return e.plate }
func (e *Engine) HeightRecord() int         { return e.heightRecord }

// DrawFrom is the first row that can hold heat. Step stores row i-1 while
// recording i, so this sits one above the height record.
func (e *Engine) DrawFrom() int {
	return max(e.heightRecord-1, 0)
}

// SetMaxTemp changes the maximum temperature, flooring at 1.
func (e *Engine) SetMaxTemp(t int) {
	e.maxTemp = max(t, 1)
}

func (e *Engine) Hotter() { e.SetMaxTemp(e.maxTemp + 1) }
func (e *Engine) Cooler() { e.SetMaxTemp(e.maxTemp - 1) }

// Tick runs one full frame.
func (e *Engine) Tick() {
	e.heater.Step()
	e.plate.Warm(e.heater.Cells(), e.maxTemp)
	e.Step()
	e.frame++
}

// Step diffuses the field one frame using the current hotplate profile and
// swaps the result in.
func (e *Engine) Step() {
	e.scratch.ClearRows(0, e.heightRecord)

	plate := e.plate.Profile()
	// start >= 1 keeps i-above inside the grid.
	start := max(e.heightRecord-coldMargin, 1)

	for i := start; i <= e.rows; i++ {
		out := e.scratch.Row(i - 1)
		rowsum := 0
		for j := 0; j < e.cols; j++ {
			sum := 0
			for x := max(j-reach, 0); x <= min(j+reach, e.cols-1); x++ {
				for y := i - above; y <= i+below; y++ {
					if y >= e.rows {
						sum += plate[x]
					} else {
						sum += e.field.Row(y)[x]
					}
				}
			}
			v := min(Cooldown(e.src, sum/samples), e.maxTemp)
			out[j] = v
			rowsum += v
		}
		if rowsum > 0 && i < e.heightRecord {
			e.heightRecord = i
		}
	}

	e.field, e.scratch = e.scratch, e.field
}
