// Package viz renders trajectories in the terminal: a braille-dot canvas,
// a small 3D projection pipeline, and a bubbletea model for live animation.
package viz
