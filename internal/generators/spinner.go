package generators

import (
	"fmt"
	"math"

	"github.com/san-kum/traject/internal/motion"
)

// Spinner rotates an object at constant per-axis rates. The returned point
// is an Euler-angle triple in degrees. Angles wrap into [0, 360) so long
// runs stay readable in inspectors.
type Spinner struct {
	Angles motion.Point
	Rates  motion.Point // degrees per second
}

func NewSpinner() *Spinner {
	return &Spinner{
		Rates: motion.Point{X: 10.0},
	}
}

func (sp *Spinner) Evaluate(t, _ float64) motion.Point {
	sp.Angles = sp.Angles.Add(sp.Rates.Scale(t))
	sp.Angles.X = wrapDegrees(sp.Angles.X)
	sp.Angles.Y = wrapDegrees(sp.Angles.Y)
	sp.Angles.Z = wrapDegrees(sp.Angles.Z)
	return sp.Angles
}

// Reset restores construction defaults.
func (sp *Spinner) Reset() { *sp = *NewSpinner() }

func (sp *Spinner) Params() map[string]float64 {
	return map[string]float64{
		"rate_x": sp.Rates.X,
		"rate_y": sp.Rates.Y,
		"rate_z": sp.Rates.Z,
	}
}

func (sp *Spinner) SetParam(name string, value float64) error {
	switch name {
	case "rate_x":
		sp.Rates.X = value
	case "rate_y":
		sp.Rates.Y = value
	case "rate_z":
		sp.Rates.Z = value
	default:
		return fmt.Errorf("%w: %s", motion.ErrUnknownParam, name)
	}
	return nil
}

func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
