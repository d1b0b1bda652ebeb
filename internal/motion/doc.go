// Package motion provides core primitives for procedural trajectory
// generation.
//
// The package defines the fundamental interfaces and types for stateful
// frame-by-frame animation of a moving point in 3D space:
//
//   - [Point]: a position (or Euler-angle triple) in world space
//   - [Generator]: stateful frame evaluator producing one point per frame
//   - [Observer]: per-frame callback for drivers and visualizers
//   - [Metric]: accumulating measurement over a trajectory
//
// A Generator carries its own persistent state record. It is created once
// per animated object and mutated in place on every Evaluate call; the
// returned point is derived from the updated state. Evaluation is total:
// any finite time inputs are accepted and no call can fail.
//
// # Thread Safety
//
// Generators are NOT thread-safe. Calls against a single generator must be
// strictly sequential. Distinct generators share no state and may be
// evaluated concurrently; see [engine.Ensemble].
package motion
