package analysis

// Flicker is the strongest periodic component of a per-frame series.
type Flicker struct {
	// Bin is the spectrum index; 0 means no periodic component was found.
	Bin int
	// Period in frames.
	Period float64
	Power  float64
}

// DominantFlicker removes the mean from series and finds the spectrum bin
// with the most power, ignoring the constant term.
func DominantFlicker(series []float64) Flicker {
	if len(series) < 4 {
		return Flicker{}
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best := Flicker{}
	for i := 1; i < len(ps); i++ {
		if ps[i] > best.Power {
			best = Flicker{Bin: i, Power: ps[i]}
		}
	}
	if best.Bin > 0 {
		best.Period = float64(2*len(ps)) / float64(best.Bin)
	}
	return best
}
