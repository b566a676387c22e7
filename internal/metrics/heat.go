package metrics

import "github.com/san-kum/fireplace/internal/fire"

// TotalHeat is the mean heat held by the field per frame.
type TotalHeat struct {
	name    string
	samples int
	total   float64
}

func NewTotalHeat() *TotalHeat {
	return &TotalHeat{name: "total_heat"}
}

func (h *TotalHeat) Name() string { return h.name }

func (h *TotalHeat) Observe(e *fire.Engine) {
	h.total += float64(e.Field().Sum())
	h.samples++
}

func (h *TotalHeat) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return h.total / float64(h.samples)
}

func (h *TotalHeat) Reset() {
	h.total = 0
	h.samples = 0
}

// FlameHeight is the tallest flame seen, in rows above the bottom edge.
type FlameHeight struct {
	name string
	peak int
}

func NewFlameHeight() *FlameHeight {
	return &FlameHeight{name: "flame_height"}
}

func (f *FlameHeight) Name() string { return f.name }

func (f *FlameHeight) Observe(e *fire.Engine) {
	f.peak = max(f.peak, Height(e))
}

func (f *FlameHeight) Value() float64 { return float64(f.peak) }
func (f *FlameHeight) Reset()         { f.peak = 0 }

// Height measures the current flame: rows from the bottom up to the
// highest row holding heat.
func Height(e *fire.Engine) int {
	field := e.Field()
	for r := e.DrawFrom(); r < field.Rows(); r++ {
		for _, v := range field.Row(r) {
			if v > 0 {
				return field.Rows() - r
			}
		}
	}
	return 0
}
