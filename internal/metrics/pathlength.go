package metrics

import (
	"github.com/san-kum/traject/internal/motion"
)

// PathLength accumulates the distance a trajectory travels frame to frame.
type PathLength struct {
	name    string
	total   float64
	prev    motion.Point
	samples int
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (p *PathLength) Name() string { return p.name }

func (p *PathLength) Observe(pt motion.Point, t float64) {
	if p.samples > 0 {
		p.total += pt.Sub(p.prev).Norm()
	}
	p.prev = pt
	p.samples++
}

func (p *PathLength) Value() float64 { return p.total }

func (p *PathLength) Reset() {
	p.total = 0
	p.prev = motion.Point{}
	p.samples = 0
}
