package generators

import (
	"fmt"
	"math"

	"github.com/san-kum/traject/internal/motion"
)

// BounceBound is the vertical excursion limit. When |Height| exceeds it
// after a frame's vertical step, the vertical speed reflects.
const BounceBound = 3.0

// Spiral traces a helix whose radius pulses ±30% on a slow sinusoid and
// whose vertical motion bounces between ±BounceBound.
//
// TotalTime accumulates the t argument and drives both the radius pulse and
// the angular position, so the shape depends only on the supplied time
// stream, not on call cadence. Height advances by VerticalSpeed*dt, with dt
// independent from t so a fixed physics step can drive the vertical axis.
type Spiral struct {
	BaseRadius    float64
	Height        float64
	AngularSpeed  float64
	VerticalSpeed float64
	TotalTime     float64
}

func NewSpiral() *Spiral {
	return &Spiral{
		BaseRadius:    2.0,
		AngularSpeed:  2.0,
		VerticalSpeed: 0.5,
	}
}

// Evaluate advances the spiral by t (planar) and dt (vertical) and returns
// the point for this frame. The returned Y is the height before this
// frame's vertical step; the step and the bounce check affect future calls
// only.
func (s *Spiral) Evaluate(t, dt float64) motion.Point {
	s.TotalTime += t

	radius := s.BaseRadius * (1 + 0.3*math.Sin(s.TotalTime*0.5))
	x := radius * math.Sin(s.TotalTime*s.AngularSpeed)
	z := radius * math.Cos(s.TotalTime*s.AngularSpeed)
	y := s.Height

	s.Height += s.VerticalSpeed * dt
	if math.Abs(s.Height) > BounceBound {
		s.VerticalSpeed = -s.VerticalSpeed
	}

	return motion.Point{X: x, Y: y, Z: z}
}

// Reset restores construction defaults, discarding accumulated state and
// any tuned parameters.
func (s *Spiral) Reset() { *s = *NewSpiral() }

func (s *Spiral) Params() map[string]float64 {
	return map[string]float64{
		"base_radius":    s.BaseRadius,
		"angular_speed":  s.AngularSpeed,
		"vertical_speed": s.VerticalSpeed,
	}
}

func (s *Spiral) SetParam(name string, value float64) error {
	switch name {
	case "base_radius":
		s.BaseRadius = value
	case "angular_speed":
		s.AngularSpeed = value
	case "vertical_speed":
		s.VerticalSpeed = value
	default:
		return fmt.Errorf("%w: %s", motion.ErrUnknownParam, name)
	}
	return nil
}
