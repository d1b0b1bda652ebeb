package metrics

import (
	"github.com/san-kum/traject/internal/motion"
)

// Reversals counts direction changes along one axis. Bouncing trajectories
// show up as vertical reversals; phase-wrapping curves reverse on their
// flipped axis.
type Reversals struct {
	name    string
	axis    func(motion.Point) float64
	count   int
	prev    float64
	prevDir int
	samples int
}

// NewReversals builds a counter for axis "x", "y" or "z" (default "y").
func NewReversals(axis string) *Reversals {
	sel := func(p motion.Point) float64 { return p.Y }
	switch axis {
	case "x":
		sel = func(p motion.Point) float64 { return p.X }
	case "z":
		sel = func(p motion.Point) float64 { return p.Z }
	}
	return &Reversals{name: "reversals_" + axis, axis: sel}
}

func (r *Reversals) Name() string { return r.name }

func (r *Reversals) Observe(p motion.Point, t float64) {
	v := r.axis(p)
	if r.samples > 0 {
		dir := 0
		switch {
		case v > r.prev:
			dir = 1
		case v < r.prev:
			dir = -1
		}
		if dir != 0 && r.prevDir != 0 && dir != r.prevDir {
			r.count++
		}
		if dir != 0 {
			r.prevDir = dir
		}
	}
	r.prev = v
	r.samples++
}

func (r *Reversals) Value() float64 { return float64(r.count) }

func (r *Reversals) Reset() {
	r.count = 0
	r.prev = 0
	r.prevDir = 0
	r.samples = 0
}
