package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/traject/internal/motion"
)

// Driver calls a generator once per frame and collects the resulting
// trajectory. It owns no generator state; the generator carries its own
// record across frames.
type Driver struct {
	gen       motion.Generator
	metrics   []motion.Metric
	observers []motion.Observer
	log       *zap.Logger
}

func New(gen motion.Generator) *Driver {
	return &Driver{
		gen:       gen,
		metrics:   make([]motion.Metric, 0),
		observers: make([]motion.Observer, 0),
		log:       zap.NewNop(),
	}
}

func (d *Driver) AddMetric(m motion.Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o motion.Observer) { d.observers = append(d.observers, o) }

// SetLogger attaches a logger for frame defects. The default is a nop.
func (d *Driver) SetLogger(log *zap.Logger) {
	if log != nil {
		d.log = log
	}
}

// Run drives the generator for cfg.Duration at cfg.Dt per frame. Each frame
// receives t = cfg.Dt and dt = cfg.PhysicsDt (cfg.Dt when zero); the two
// timesteps stay independent so a fixed physics step can be combined with a
// variable frame step.
func (d *Driver) Run(ctx context.Context, cfg motion.Config) (*motion.Result, error) {
	if err := d.validateConfig(cfg); err != nil {
		return nil, err
	}

	frames := int(cfg.Duration / cfg.Dt)
	physicsDt := cfg.PhysicsDt
	if physicsDt == 0 {
		physicsDt = cfg.Dt
	}

	result := &motion.Result{
		Points:  make([]motion.Point, 0, frames),
		Times:   make([]float64, 0, frames),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range d.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		p := d.gen.Evaluate(cfg.Dt, physicsDt)
		t += cfg.Dt

		if cfg.ValidatePoints && !p.IsValid() {
			err := motion.FrameError{Time: t, Frame: i, Message: "invalid point (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			d.log.Warn("frame produced invalid point",
				zap.Int("frame", i),
				zap.Float64("t", t),
			)
			break
		}

		for _, m := range d.metrics {
			m.Observe(p, t)
		}
		for _, obs := range d.observers {
			obs.OnFrame(p, t)
		}

		result.Points = append(result.Points, p)
		result.Times = append(result.Times, t)
		result.FramesTaken++
	}

	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams frames to the callback instead of collecting
// them. Returning false from the callback stops the run without error.
func (d *Driver) RunWithCallback(ctx context.Context, cfg motion.Config, callback func(motion.Point, float64) bool) error {
	if err := d.validateConfig(cfg); err != nil {
		return err
	}

	physicsDt := cfg.PhysicsDt
	if physicsDt == 0 {
		physicsDt = cfg.Dt
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := d.gen.Evaluate(cfg.Dt, physicsDt)
		t += cfg.Dt

		if cfg.ValidatePoints && !p.IsValid() {
			return fmt.Errorf("%w at t=%.4f", motion.ErrInvalidPoint, t)
		}

		if !callback(p, t) {
			return nil
		}
	}

	return nil
}

func (d *Driver) validateConfig(cfg motion.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.PhysicsDt < 0 {
		return fmt.Errorf("physics dt must be non-negative, got %f", cfg.PhysicsDt)
	}
	return nil
}
