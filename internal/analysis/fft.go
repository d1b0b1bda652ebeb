// Package analysis provides frequency-domain diagnostics for stored
// trajectories.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes a radix-2 Cooley-Tukey transform. The input length must be a
// power of two; use Pad first for arbitrary-length samples.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

// PowerSpectrum returns the magnitude of the first half of the transform.
func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// Pad copies data into the smallest power-of-two buffer that holds it,
// zero-filling the tail.
func Pad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// DominantFrequency returns the strongest non-DC frequency in hertz for a
// sample covering duration seconds, and its power. Zero duration or fewer
// than two samples yield (0, 0).
func DominantFrequency(data []float64, duration float64) (freq, power float64) {
	if duration <= 0 || len(data) < 2 {
		return 0, 0
	}

	padded := Pad(data)
	ps := PowerSpectrum(padded)
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			maxIdx = i
		}
	}

	// Padding stretches the window, so bin spacing is the sample rate
	// over the padded length, not 1/duration.
	binHz := float64(len(data)) / (duration * float64(len(padded)))
	return float64(maxIdx) * binHz, power
}
