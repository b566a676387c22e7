package fire

import "math/rand"

// Source is the slice of math/rand the engine draws from.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.Intn(n) }

// Cooldown returns heat-1 with probability 1/heat and heat otherwise, so
// cool cells keep cooling while hot cells tend to hold.
func Cooldown(src Source, heat int) int {
	if heat <= 0 {
		return 0
	}
	if src.Intn(heat) == 0 {
		return heat - 1
	}
	return heat
}
