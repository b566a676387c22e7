package metrics

import "github.com/san-kum/fireplace/internal/fire"

// LitFraction is the mean share of heater cells burning per frame.
type LitFraction struct {
	name    string
	samples int
	total   float64
}

func NewLitFraction() *LitFraction {
	return &LitFraction{name: "lit_fraction"}
}

func (l *LitFraction) Name() string { return l.name }

func (l *LitFraction) Observe(e *fire.Engine) {
	h := e.Heater()
	if h.Len() > 0 {
		l.total += float64(h.Lit()) / float64(h.Len())
	}
	l.samples++
}

func (l *LitFraction) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.total / float64(l.samples)
}

func (l *LitFraction) Reset() {
	l.total = 0
	l.samples = 0
}
