package analysis

import (
	"errors"
	"math"
	"math/cmplx"
)

var ErrLength = errors.New("analysis: fft requires a power of 2 length")

func FFT(data []float64) ([]complex128, error) {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result, nil
	}

	if n&(n-1) != 0 {
		return nil, ErrLength
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven, _ := FFT(even)
	fodd, _ := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result, nil
}

// PowerSpectrum zero pads data to a power of 2 and returns the magnitude
// of the first half of its transform.
func PowerSpectrum(data []float64) []float64 {
	padded := make([]float64, nextPow2(len(data)))
	copy(padded, data)

	fft, _ := FFT(padded)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
