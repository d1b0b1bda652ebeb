package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 0.016
	DefaultDuration = 10.0
	DefaultFPS      = 60
)

type Config struct {
	Generator string       `yaml:"generator"`
	Dt        float64      `yaml:"dt"`
	PhysicsDt float64      `yaml:"physics_dt"`
	Duration  float64      `yaml:"duration"`
	Seed      int64        `yaml:"seed"`
	FPS       int          `yaml:"fps"`
	Params    ParamsConfig `yaml:"params"`
}

// ParamsConfig holds generator tunables. Zero values mean "keep the
// generator default"; only the fields for the selected generator matter.
type ParamsConfig struct {
	BaseRadius      float64 `yaml:"base_radius"`
	AngularSpeed    float64 `yaml:"angular_speed"`
	VerticalSpeed   float64 `yaml:"vertical_speed"`
	Scale           float64 `yaml:"scale"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	VX              float64 `yaml:"vx"`
	VY              float64 `yaml:"vy"`
	VZ              float64 `yaml:"vz"`
	RateX           float64 `yaml:"rate_x"`
	RateY           float64 `yaml:"rate_y"`
	RateZ           float64 `yaml:"rate_z"`
}

func DefaultConfig() *Config {
	return &Config{
		Generator: "spiral",
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		FPS:       DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GeneratorParams returns the set tunables as a name/value map, skipping
// zero fields so generator defaults survive.
func (c *Config) GeneratorParams() map[string]float64 {
	all := map[string]float64{
		"base_radius":      c.Params.BaseRadius,
		"angular_speed":    c.Params.AngularSpeed,
		"vertical_speed":   c.Params.VerticalSpeed,
		"scale":            c.Params.Scale,
		"speed_multiplier": c.Params.SpeedMultiplier,
		"vx":               c.Params.VX,
		"vy":               c.Params.VY,
		"vz":               c.Params.VZ,
		"rate_x":           c.Params.RateX,
		"rate_y":           c.Params.RateY,
		"rate_z":           c.Params.RateZ,
	}

	set := make(map[string]float64)
	for name, value := range all {
		if value != 0 {
			set[name] = value
		}
	}
	return set
}
