package motion

import (
	"fmt"
	"math"
)

// Point is a position in world space. Rotation generators reuse it as an
// Euler-angle triple in degrees.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }
func (p Point) Scale(factor float64) Point {
	return Point{p.X * factor, p.Y * factor, p.Z * factor}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

func (p Point) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Generator is a stateful frame evaluator. Evaluate advances the internal
// state by t (and dt for generators with an independent secondary timestep)
// and returns the point for the current frame. Generators that have no use
// for dt ignore it.
//
// Reset restores the state the generator was constructed with. Nothing else
// may reinitialize a generator's state.
type Generator interface {
	Evaluate(t, dt float64) Point
	Reset()
}

// Configurable exposes runtime-tunable generator parameters.
type Configurable interface {
	Params() map[string]float64
	SetParam(name string, value float64) error
}

// Observer receives every evaluated frame.
type Observer interface {
	OnFrame(p Point, t float64)
}

// Metric accumulates a measurement over a trajectory.
type Metric interface {
	Name() string
	Observe(p Point, t float64)
	Value() float64
	Reset()
}

// Config controls a driver run.
//
// Dt is the frame timestep fed to generators as t. PhysicsDt is the
// secondary timestep fed as dt; zero means "same as Dt". The two are
// deliberately independent so a fixed physics step can be combined with a
// variable frame step.
type Config struct {
	Dt        float64
	PhysicsDt float64
	Duration  float64
	// Seed is recorded with run metadata for reproducibility. The
	// built-in generators are deterministic and do not read it.
	Seed           int64
	FPS            int
	ValidatePoints bool
}

func DefaultConfig() Config {
	return Config{
		Dt:             0.016,
		Duration:       10.0,
		FPS:            60,
		ValidatePoints: true,
	}
}

// Result holds the output of a driver run.
type Result struct {
	Points      []Point
	Times       []float64
	Metrics     map[string]float64
	FramesTaken int
	Errors      []error
}

// FrameError reports a defect detected on a specific frame.
type FrameError struct {
	Time    float64
	Frame   int
	Message string
}

func (e FrameError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %s", e.Frame, e.Time, e.Message)
}
