package metrics

import (
	"math"

	"github.com/san-kum/traject/internal/motion"
)

// Bounds tracks the largest excursion a trajectory makes from the origin,
// per axis and overall.
type Bounds struct {
	name    string
	maxX    float64
	maxY    float64
	maxZ    float64
	samples int
}

func NewBounds() *Bounds {
	return &Bounds{name: "max_excursion"}
}

func (b *Bounds) Name() string { return b.name }

func (b *Bounds) Observe(p motion.Point, t float64) {
	b.maxX = math.Max(b.maxX, math.Abs(p.X))
	b.maxY = math.Max(b.maxY, math.Abs(p.Y))
	b.maxZ = math.Max(b.maxZ, math.Abs(p.Z))
	b.samples++
}

// Value returns the largest per-axis excursion seen.
func (b *Bounds) Value() float64 {
	return math.Max(b.maxX, math.Max(b.maxY, b.maxZ))
}

func (b *Bounds) MaxX() float64 { return b.maxX }
func (b *Bounds) MaxY() float64 { return b.maxY }
func (b *Bounds) MaxZ() float64 { return b.maxZ }

func (b *Bounds) Reset() {
	b.maxX, b.maxY, b.maxZ = 0, 0, 0
	b.samples = 0
}
