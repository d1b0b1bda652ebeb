package engine

import (
	"sync"

	"github.com/san-kum/traject/internal/motion"
)

// TrailPool recycles fixed-capacity point buffers. Animation loops append
// recent points into a trail and drop the buffer on stop; pooling keeps
// long-running scenes from churning the allocator.
type TrailPool struct {
	pool     sync.Pool
	capacity int
}

func NewTrailPool(capacity int) *TrailPool {
	return &TrailPool{
		capacity: capacity,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]motion.Point, 0, capacity)
			},
		},
	}
}

func (p *TrailPool) Get() []motion.Point {
	return p.pool.Get().([]motion.Point)
}

func (p *TrailPool) Put(trail []motion.Point) {
	if cap(trail) == p.capacity {
		p.pool.Put(trail[:0])
	}
}

func (p *TrailPool) Capacity() int { return p.capacity }
