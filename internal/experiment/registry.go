package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/traject/internal/generators"
	"github.com/san-kum/traject/internal/metrics"
	"github.com/san-kum/traject/internal/motion"
)

type Registry struct {
	generators map[string]func() motion.Generator
}

func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]func() motion.Generator),
	}

	r.generators["spiral"] = func() motion.Generator { return generators.NewSpiral() }
	r.generators["lissajous"] = func() motion.Generator { return generators.NewLissajous() }
	r.generators["drift"] = func() motion.Generator { return generators.NewDrift() }
	r.generators["spinner"] = func() motion.Generator { return generators.NewSpinner() }

	return r
}

func (r *Registry) Get(name string) (motion.Generator, error) {
	fn, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return fn(), nil
}

// Factory returns the constructor itself, for ensemble runs that need a
// fresh generator per goroutine.
func (r *Registry) Factory(name string) (func() motion.Generator, error) {
	fn, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return fn, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics picks the measurements worth recording for a generator.
// Bouncing trajectories get a vertical reversal count; wrapping curves get
// one on their flipped axis.
func (r *Registry) DefaultMetrics(name string) []motion.Metric {
	ms := []motion.Metric{
		metrics.NewBounds(),
		metrics.NewPathLength(),
	}
	switch name {
	case "spiral":
		ms = append(ms, metrics.NewReversals("y"))
	case "lissajous":
		ms = append(ms, metrics.NewReversals("z"))
	}
	return ms
}

// ApplyParams sets named tunables on a generator that supports them.
func ApplyParams(gen motion.Generator, params map[string]float64) error {
	if len(params) == 0 {
		return nil
	}
	cfg, ok := gen.(motion.Configurable)
	if !ok {
		return fmt.Errorf("generator does not accept parameters")
	}
	for name, value := range params {
		if err := cfg.SetParam(name, value); err != nil {
			return err
		}
	}
	return nil
}
