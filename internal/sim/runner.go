package sim

import (
	"context"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/san-kum/fireplace/internal/fire"
)

type Runner struct {
	engine  *fire.Engine
	display Display
	cfg     Config
	logger  *log.Logger

	phase         Phase
	resizePending atomic.Bool
	quit          atomic.Bool

	metrics   []Metric
	observers []Observer
}

// New wires an engine to a display. A nil logger discards log output.
func New(engine *fire.Engine, display Display, cfg Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.Glyph == 0 {
		cfg.Glyph = '@'
	}
	return &Runner{
		engine:    engine,
		display:   display,
		cfg:       cfg,
		logger:    logger,
		phase:     Running,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Engine() *fire.Engine { return r.engine }
func (r *Runner) Phase() Phase         { return r.phase }
func (r *Runner) Done() bool           { return r.phase == Stopped }

// NotifyResize records that the display changed size. Safe to call from
// any goroutine; the buffers are resized on the next tick.
func (r *Runner) NotifyResize() { r.resizePending.Store(true) }

// Stop requests an orderly shutdown at the next tick. Safe to call from
// any goroutine.
func (r *Runner) Stop() { r.quit.Store(true) }

// Metrics returns the current value of every registered metric.
func (r *Runner) Metrics() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Tick runs one loop iteration: keys, pending events, then a frame.
// Errors are fatal to the loop.
func (r *Runner) Tick() error {
	if r.display == nil {
		return ErrNoDisplay
	}
	if r.phase == Stopped {
		return nil
	}

	r.pollKeys()

	ev := Events{Resize: r.resizePending.Swap(false), Quit: r.quit.Load()}
	r.phase = Transition(r.phase, ev)

	switch r.phase {
	case Stopped:
		r.logger.Printf("stopping after %d frames", r.engine.Frame())
		return nil
	case Resizing:
		if err := r.resize(); err != nil {
			return err
		}
		r.phase = Transition(r.phase, Events{})
	}

	r.engine.Tick()
	err := r.display.Render(Frame{
		Field:   r.engine.Field(),
		Glyph:   r.cfg.Glyph,
		MaxTemp: r.engine.MaxTemp(),
		From:    r.engine.DrawFrom(),
	})
	if err != nil {
		return err
	}

	for _, m := range r.metrics {
		m.Observe(r.engine)
	}
	for _, o := range r.observers {
		o.OnFrame(r.engine)
	}

	if r.cfg.MaxFrames > 0 && r.engine.Frame() >= r.cfg.MaxFrames {
		r.Stop()
	}
	return nil
}

func (r *Runner) pollKeys() {
	for {
		key, ok := r.display.PollKey()
		if !ok {
			return
		}
		switch key {
		case KeyQuit:
			r.Stop()
		case KeyHotter:
			r.engine.Hotter()
			r.logger.Printf("max temp %d", r.engine.MaxTemp())
		case KeyCooler:
			r.engine.Cooler()
			r.logger.Printf("max temp %d", r.engine.MaxTemp())
		}
	}
}

func (r *Runner) resize() error {
	oldRows, oldCols := r.engine.Rows(), r.engine.Cols()
	rows, cols := r.display.Size()
	r.display.Resize(rows, cols)
	if err := r.engine.Resize(rows, cols); err != nil {
		return err
	}
	r.display.Clear()
	r.logger.Printf("resize %dx%d -> %dx%d", oldRows, oldCols, rows, cols)
	return nil
}

// Run ticks until the runner stops or ctx is cancelled, sleeping the frame
// period between ticks. Cancellation is an orderly stop, not an error.
func (r *Runner) Run(ctx context.Context) error {
	if r.display == nil {
		return ErrNoDisplay
	}

	var tick <-chan time.Time
	if r.cfg.FramePeriod > 0 {
		ticker := time.NewTicker(r.cfg.FramePeriod)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if ctx.Err() != nil {
			r.Stop()
		}
		if err := r.Tick(); err != nil {
			return err
		}
		if r.Done() {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
	}
}
