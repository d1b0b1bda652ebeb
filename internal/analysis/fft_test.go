package analysis

import (
	"math"
	"testing"
)

func TestFFTImpulse(t *testing.T) {
	data := []float64{1, 0, 0, 0}
	result := FFT(data)

	// Impulse transforms to a flat spectrum.
	for i, c := range result {
		if math.Abs(real(c)-1) > 1e-12 || math.Abs(imag(c)) > 1e-12 {
			t.Errorf("bin %d: got %v, want 1+0i", i, c)
		}
	}
}

func TestPowerSpectrumSine(t *testing.T) {
	n := 256
	cycles := 8.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * cycles * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)

	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	if maxIdx != int(cycles) {
		t.Errorf("expected peak at bin %d, got %d", int(cycles), maxIdx)
	}
}

func TestPad(t *testing.T) {
	padded := Pad(make([]float64, 100))
	if len(padded) != 128 {
		t.Errorf("expected 128, got %d", len(padded))
	}

	padded = Pad(make([]float64, 64))
	if len(padded) != 64 {
		t.Errorf("expected 64, got %d", len(padded))
	}
}

func TestDominantFrequency(t *testing.T) {
	n := 512
	duration := 4.0 // seconds
	hz := 2.0
	data := make([]float64, n)
	for i := range data {
		ts := duration * float64(i) / float64(n)
		data[i] = math.Sin(2 * math.Pi * hz * ts)
	}

	freq, power := DominantFrequency(data, duration)
	if math.Abs(freq-hz) > 0.3 {
		t.Errorf("expected ~%.1f hz, got %.3f", hz, freq)
	}
	if power <= 0 {
		t.Error("expected positive power")
	}
}

func TestDominantFrequencyPadded(t *testing.T) {
	// A frame count that is not a power of two forces zero padding,
	// which changes the bin spacing of the spectrum.
	n := 300
	duration := 3.0
	hz := 5.0
	data := make([]float64, n)
	for i := range data {
		ts := duration * float64(i) / float64(n)
		data[i] = math.Sin(2 * math.Pi * hz * ts)
	}

	freq, power := DominantFrequency(data, duration)
	if math.Abs(freq-hz) > 0.3 {
		t.Errorf("expected ~%.1f hz, got %.3f", hz, freq)
	}
	if power <= 0 {
		t.Error("expected positive power")
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if f, p := DominantFrequency(nil, 1.0); f != 0 || p != 0 {
		t.Error("expected zeros for empty data")
	}
	if f, p := DominantFrequency([]float64{1, 2}, 0); f != 0 || p != 0 {
		t.Error("expected zeros for zero duration")
	}
}
