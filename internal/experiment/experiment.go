package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/traject/internal/engine"
	"github.com/san-kum/traject/internal/motion"
)

type Config struct {
	Generator string
	Dt        float64
	PhysicsDt float64
	Duration  float64
	Seed      int64
	Params    map[string]float64
}

type Experiment struct {
	cfg    Config
	driver *engine.Driver
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(gen motion.Generator, metrics []motion.Metric) error {
	if err := ApplyParams(gen, e.cfg.Params); err != nil {
		return err
	}

	e.driver = engine.New(gen)
	for _, m := range metrics {
		e.driver.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*motion.Result, error) {
	if e.driver == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := motion.Config{
		Dt:             e.cfg.Dt,
		PhysicsDt:      e.cfg.PhysicsDt,
		Duration:       e.cfg.Duration,
		Seed:           e.cfg.Seed,
		ValidatePoints: true,
	}

	return e.driver.Run(ctx, cfg)
}

// Driver returns the underlying driver for adding observers.
func (e *Experiment) Driver() *engine.Driver {
	return e.driver
}
