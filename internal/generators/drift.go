package generators

import (
	"fmt"

	"github.com/san-kum/traject/internal/motion"
)

// Drift moves a point at constant velocity from an origin. Position is
// derived from accumulated time rather than compounded per frame, so a
// given time stream always lands on the same point.
type Drift struct {
	Origin    motion.Point
	Velocity  motion.Point
	TotalTime float64
}

func NewDrift() *Drift {
	return &Drift{
		Velocity: motion.Point{X: 1.0},
	}
}

func (d *Drift) Evaluate(t, _ float64) motion.Point {
	d.TotalTime += t
	return d.Origin.Add(d.Velocity.Scale(d.TotalTime))
}

// Reset restores construction defaults.
func (d *Drift) Reset() { *d = *NewDrift() }

func (d *Drift) Params() map[string]float64 {
	return map[string]float64{
		"vx": d.Velocity.X,
		"vy": d.Velocity.Y,
		"vz": d.Velocity.Z,
	}
}

func (d *Drift) SetParam(name string, value float64) error {
	switch name {
	case "vx":
		d.Velocity.X = value
	case "vy":
		d.Velocity.Y = value
	case "vz":
		d.Velocity.Z = value
	default:
		return fmt.Errorf("%w: %s", motion.ErrUnknownParam, name)
	}
	return nil
}
