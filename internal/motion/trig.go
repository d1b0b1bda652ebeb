package motion

import "math"

const twoPi = 2 * math.Pi

// TrigTable provides precomputed sine values with linear interpolation.
// Cosine is read from the same table with a quarter-turn offset. The live
// renderer evaluates thousands of trail points per frame; table lookups keep
// that under budget without visible error (4096 entries = ~0.0015 rad).
type TrigTable struct {
	sin []float64
	n   int
}

var DefaultTrigTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		t.sin[i] = math.Sin(float64(i) * twoPi / float64(n))
	}
	return t
}

func (t *TrigTable) lookup(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}

	idx := x * float64(t.n) / twoPi
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	return t.sin[i0]*(1-frac) + t.sin[i1]*frac
}

// Sin returns approximate sin using table lookup with interpolation.
func (t *TrigTable) Sin(x float64) float64 { return t.lookup(x) }

// Cos returns approximate cos, read as sin shifted by π/2.
func (t *TrigTable) Cos(x float64) float64 { return t.lookup(x + math.Pi/2) }

// SinCos returns both values for one angle.
func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	return t.lookup(x), t.lookup(x + math.Pi/2)
}

// FastSin uses the default table for quick sin lookup.
func FastSin(x float64) float64 { return DefaultTrigTable.Sin(x) }

// FastCos uses the default table for quick cos lookup.
func FastCos(x float64) float64 { return DefaultTrigTable.Cos(x) }

// FastSinCos uses the default table.
func FastSinCos(x float64) (float64, float64) { return DefaultTrigTable.SinCos(x) }
