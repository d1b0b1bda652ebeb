package generators

import (
	"fmt"
	"math"

	"github.com/san-kum/traject/internal/motion"
)

// Lissajous traces a bounded figure curve. Phase accumulates scaled frame
// time; when it exceeds a full revolution the generator wraps: phase resets
// to zero, the cadence is re-rolled into [0.5, 2.0) and the Z lobe flips.
// The three wrap mutations happen together or not at all.
//
// The re-roll draws from |sin(t)| of the frame that triggered the wrap, so
// the post-wrap cadence depends on whatever single time increment crossed
// the threshold. That makes pacing uneven across cycles on a variable frame
// step. Intentional; callers wanting steady pacing should drive with a
// fixed t.
type Lissajous struct {
	Phase           float64
	Scale           float64
	SpeedMultiplier float64
	Direction       float64 // exactly +1 or -1
}

func NewLissajous() *Lissajous {
	return &Lissajous{
		Scale:           3.0,
		SpeedMultiplier: 1.0,
		Direction:       1,
	}
}

// Evaluate advances the phase by t. The dt argument is unused; the curve
// has no secondary timestep.
func (l *Lissajous) Evaluate(t, _ float64) motion.Point {
	l.Phase += t * l.SpeedMultiplier

	if l.Phase > 2*math.Pi {
		l.Phase = 0
		l.SpeedMultiplier = 0.5 + math.Abs(math.Sin(t))*1.5
		l.Direction = -l.Direction
	}

	return motion.Point{
		X: l.Scale * math.Sin(l.Phase),
		Y: 0.5 * math.Sin(3*l.Phase),
		Z: l.Scale * math.Sin(2*l.Phase) * l.Direction,
	}
}

// Reset restores construction defaults.
func (l *Lissajous) Reset() { *l = *NewLissajous() }

func (l *Lissajous) Params() map[string]float64 {
	return map[string]float64{
		"scale":            l.Scale,
		"speed_multiplier": l.SpeedMultiplier,
	}
}

func (l *Lissajous) SetParam(name string, value float64) error {
	switch name {
	case "scale":
		l.Scale = value
	case "speed_multiplier":
		l.SpeedMultiplier = value
	default:
		return fmt.Errorf("%w: %s", motion.ErrUnknownParam, name)
	}
	return nil
}
