// Package hotplate smooths the binary heater into a graduated heat source.
//
// Each frame every column halves and then gains rate if its heater cell is
// lit, an integer exponential low-pass filter. A column held lit settles at
// rate + fixed/2, one below 2*rate once truncation kicks in.
package hotplate

import "github.com/san-kum/fireplace/internal/grid"

type Plate struct {
	heat []int
}

func New(cols int) *Plate {
	return &Plate{heat: make([]int, cols)}
}

// Warm advances the filter one frame. Columns beyond len(heater) only decay.
func (p *Plate) Warm(heater []uint8, rate int) []int {
	for i := range p.heat {
		p.heat[i] /= 2
		if i < len(heater) {
			p.heat[i] += int(heater[i]) * rate
		}
	}
	return p.heat
}

func (p *Plate) Profile() []int { return p.heat }
func (p *Plate) Len() int       { return len(p.heat) }

// At returns the heat of column x; the engine only asks for in-range columns.
func (p *Plate) At(x int) int { return p.heat[x] }

// Fill sets every column to v.
func (p *Plate) Fill(v int) {
	for i := range p.heat {
		p.heat[i] = v
	}
}

// Resize keeps the first min(old, cols) columns; new columns start cold.
func (p *Plate) Resize(cols int) {
	p.heat = grid.ResizeLine(p.heat, cols)
}
