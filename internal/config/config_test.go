package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Generator != "spiral" {
		t.Errorf("expected generator spiral, got %s", cfg.Generator)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traject.yaml")

	cfg := DefaultConfig()
	cfg.Generator = "lissajous"
	cfg.PhysicsDt = 0.05
	cfg.Params.Scale = 4.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Generator != "lissajous" {
		t.Errorf("expected lissajous, got %s", loaded.Generator)
	}
	if loaded.PhysicsDt != 0.05 {
		t.Errorf("expected physics dt 0.05, got %f", loaded.PhysicsDt)
	}
	if loaded.Params.Scale != 4.5 {
		t.Errorf("expected scale 4.5, got %f", loaded.Params.Scale)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("generator: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestGeneratorParamsSkipsZeroes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.BaseRadius = 2.5
	cfg.Params.RateZ = 15.0

	params := cfg.GeneratorParams()
	if len(params) != 2 {
		t.Fatalf("expected 2 set params, got %d: %v", len(params), params)
	}
	if params["base_radius"] != 2.5 || params["rate_z"] != 15.0 {
		t.Errorf("unexpected params: %v", params)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("spiral", "tight")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.AngularSpeed != 4.0 {
		t.Errorf("expected angular speed 4.0, got %f", cfg.Params.AngularSpeed)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("spiral", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "tight") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("spiral")) == 0 {
		t.Error("expected presets for spiral")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent generator")
	}
}
