package metrics

import "github.com/san-kum/fireplace/internal/fire"

// Sample is one frame's worth of measurements.
type Sample struct {
	Frame        int
	Heat         int
	Height       int
	HeightRecord int
	Lit          int
}

// Series records a Sample per frame. It is an observer, not a metric.
type Series struct {
	Samples []Sample
}

func NewSeries(capacity int) *Series {
	return &Series{Samples: make([]Sample, 0, capacity)}
}

func (s *Series) OnFrame(e *fire.Engine) {
	s.Samples = append(s.Samples, Sample{
		Frame:        e.Frame(),
		Heat:         e.Field().Sum(),
		Height:       Height(e),
		HeightRecord: e.HeightRecord(),
		Lit:          e.Heater().Lit(),
	})
}

func (s *Series) Heat() []float64 {
	return s.column(func(x Sample) int { return x.Heat })
}

func (s *Series) Height() []float64 {
	return s.column(func(x Sample) int { return x.Height })
}

func (s *Series) column(pick func(Sample) int) []float64 {
	out := make([]float64, len(s.Samples))
	for i, x := range s.Samples {
		out[i] = float64(pick(x))
	}
	return out
}
