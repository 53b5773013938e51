package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "freefall" {
		t.Errorf("expected model freefall, got %s", cfg.Model)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Horizon <= 0 {
		t.Error("horizon should be positive")
	}
	if cfg.Control.Shrink <= 0 || cfg.Control.Shrink >= 1 {
		t.Error("shrink factor should be in (0,1)")
	}
	if cfg.Control.Growth <= 1 {
		t.Error("growth factor should be greater than 1")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("freefall", "reference")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Dt != 0.025 {
		t.Errorf("expected dt 0.025, got %f", cfg.Dt)
	}
	if cfg.Control.Tol != 1e-2 {
		t.Errorf("expected tol 1e-2, got %g", cfg.Control.Tol)
	}
	if cfg.Horizon != 1.5 {
		t.Errorf("expected horizon 1.5, got %f", cfg.Horizon)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("freefall", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "reference"); cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("freefall"); len(presets) == 0 {
		t.Error("expected presets for freefall")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestGetInitState(t *testing.T) {
	tests := []struct {
		model    string
		expected int
	}{
		{"freefall", 1},
		{"decay", 1},
		{"logistic", 1},
		{"oscillator", 2},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Model = tt.model
		state := cfg.GetInitState()
		if len(state) != tt.expected {
			t.Errorf("model %s: expected %d components, got %d", tt.model, tt.expected, len(state))
		}
	}
}

func TestPresets_ControlComplete(t *testing.T) {
	for model, group := range Presets {
		for name, cfg := range group {
			ctrl := cfg.Control
			if ctrl.H0 <= 0 {
				t.Errorf("%s/%s: h0 must be positive", model, name)
			}
			if ctrl.Tol <= 0 {
				t.Errorf("%s/%s: tolerance must be positive", model, name)
			}
			if ctrl.Shrink <= 0 || ctrl.Shrink >= 1 {
				t.Errorf("%s/%s: shrink factor must be in (0,1)", model, name)
			}
			if ctrl.Growth <= 1 {
				t.Errorf("%s/%s: growth factor must be greater than 1", model, name)
			}
			if ctrl.MaxRejects <= 0 {
				t.Errorf("%s/%s: presets must carry a rejection guard", model, name)
			}
			if !ctrl.LegacyShrink {
				t.Errorf("%s/%s: presets default to the legacy shrink rule", model, name)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Model = "oscillator"
	cfg.Adaptive = true
	cfg.Control.Tol = 1e-7
	cfg.Control.LegacyShrink = false

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Model != "oscillator" || !loaded.Adaptive {
		t.Error("model settings lost in round trip")
	}
	if loaded.Control.Tol != 1e-7 {
		t.Errorf("tolerance lost in round trip: %g", loaded.Control.Tol)
	}
	if loaded.Control.LegacyShrink {
		t.Error("legacy_shrink flag lost in round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
