// Package generators provides trajectory generator variants.
//
// Each generator implements the [motion.Generator] interface, carrying a
// persistent per-object state record that is advanced deterministically on
// every frame:
//
//   - [Spiral]: breathing-radius helix that bounces between height bounds
//   - [Lissajous]: bounded figure curve with randomized cadence per cycle
//   - [Drift]: constant-velocity linear motion
//   - [Spinner]: constant-rate Euler-angle rotation
//
// All generators also implement [motion.Configurable] for runtime parameter
// adjustment.
//
// # Determinism
//
// Given the same initial state and the same sequence of (t, dt) inputs, a
// generator produces a bit-identical point sequence. The Lissajous cadence
// re-roll draws from |sin(t)| of the wrapping frame's own time increment,
// so it too is deterministic, just hard to predict across cycles.
package generators
