package config

var Presets = map[string]map[string]*Config{
	"spiral": {
		"tight": {
			Generator: "spiral", Dt: 0.016, Duration: 20.0,
			Params: ParamsConfig{BaseRadius: 1.0, AngularSpeed: 4.0, VerticalSpeed: 0.5},
		},
		"wide": {
			Generator: "spiral", Dt: 0.016, Duration: 20.0,
			Params: ParamsConfig{BaseRadius: 5.0, AngularSpeed: 1.0, VerticalSpeed: 0.25},
		},
		"bouncy": {
			Generator: "spiral", Dt: 0.016, PhysicsDt: 0.05, Duration: 30.0,
			Params: ParamsConfig{BaseRadius: 2.0, AngularSpeed: 2.0, VerticalSpeed: 2.0},
		},
	},
	"lissajous": {
		"calm": {
			Generator: "lissajous", Dt: 0.016, Duration: 30.0,
			Params: ParamsConfig{Scale: 3.0, SpeedMultiplier: 0.5},
		},
		"frantic": {
			Generator: "lissajous", Dt: 0.016, Duration: 20.0,
			Params: ParamsConfig{Scale: 2.0, SpeedMultiplier: 1.9},
		},
	},
	"drift": {
		"diagonal": {
			Generator: "drift", Dt: 0.016, Duration: 10.0,
			Params: ParamsConfig{VX: 1.0, VY: 0.5, VZ: 0.25},
		},
	},
	"spinner": {
		"tumble": {
			Generator: "spinner", Dt: 0.016, Duration: 15.0,
			Params: ParamsConfig{RateX: 30.0, RateY: 45.0, RateZ: 10.0},
		},
	},
}

func GetPreset(generator, preset string) *Config {
	generatorPresets, ok := Presets[generator]
	if !ok {
		return nil
	}
	cfg, ok := generatorPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(generator string) []string {
	generatorPresets, ok := Presets[generator]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(generatorPresets))
	for name := range generatorPresets {
		names = append(names, name)
	}
	return names
}
