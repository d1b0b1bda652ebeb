// Package scene holds named animated objects and drives their trajectory
// generators from per-object animation loops.
package scene

import (
	"sync"

	"github.com/san-kum/traject/internal/motion"
)

// Transform is an object's pose. Rotation is an Euler-angle triple in
// degrees.
type Transform struct {
	Position motion.Point
	Rotation motion.Point
	Scale    motion.Point
}

// Object is a named animated entity. It exclusively owns its generators:
// they are created with the object, mutated only by the object's single
// animation loop, and discarded with it. Sharing a generator between
// objects would corrupt both trajectories silently, so the constructor is
// the only place generators enter.
type Object struct {
	name string

	mu        sync.Mutex
	transform Transform
	trail     []motion.Point

	position motion.Generator
	rotation motion.Generator // optional
}

// NewObject creates an object animated by the given generators. The
// rotation generator may be nil for objects that only translate.
func NewObject(name string, position, rotation motion.Generator) *Object {
	return &Object{
		name:     name,
		position: position,
		rotation: rotation,
		transform: Transform{
			Scale: motion.Point{X: 1, Y: 1, Z: 1},
		},
	}
}

func (o *Object) Name() string { return o.name }

// Transform returns a snapshot of the current pose.
func (o *Object) Transform() Transform {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.transform
}

// Trail returns a copy of the recent position history. Empty unless the
// object is (or was) animated by a manager loop.
func (o *Object) Trail() []motion.Point {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]motion.Point, len(o.trail))
	copy(out, o.trail)
	return out
}

// advance evaluates the generators for one frame and publishes the new
// pose. Called only from the object's animation loop, never concurrently.
func (o *Object) advance(t, dt float64) Transform {
	pos := o.position.Evaluate(t, dt)

	var rot motion.Point
	if o.rotation != nil {
		rot = o.rotation.Evaluate(t, dt)
	}

	o.mu.Lock()
	o.transform.Position = pos
	if o.rotation != nil {
		o.transform.Rotation = rot
	}

	if o.trail != nil {
		if len(o.trail) == cap(o.trail) {
			copy(o.trail, o.trail[1:])
			o.trail = o.trail[:len(o.trail)-1]
		}
		o.trail = append(o.trail, pos)
	}
	tr := o.transform
	o.mu.Unlock()

	return tr
}

func (o *Object) attachTrail(buf []motion.Point) {
	o.mu.Lock()
	o.trail = buf
	o.mu.Unlock()
}

func (o *Object) detachTrail() []motion.Point {
	o.mu.Lock()
	buf := o.trail
	o.trail = nil
	o.mu.Unlock()
	return buf
}
