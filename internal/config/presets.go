package config

var Presets = map[string]map[string]*Config{
	"freefall": {
		"reference": {
			Model: "freefall", Method: "heun", Dt: 0.025, Horizon: 1.5,
			InitState: InitStateConfig{V0: 0.0},
			Control:   ControlConfig{H0: 0.025, Tol: 1e-2, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
		"fine": {
			Model: "freefall", Method: "rk4", Dt: 0.005, Horizon: 1.5,
			InitState: InitStateConfig{V0: 0.0},
			Control:   ControlConfig{H0: 0.005, Tol: 1e-5, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
		"adaptive": {
			Model: "freefall", Method: "heun", Adaptive: true, Dt: 0.025, Horizon: 1.5,
			InitState: InitStateConfig{V0: 0.0},
			Control:   ControlConfig{H0: 0.025, Tol: 1e-2, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
	},
	"decay": {
		"slow": {
			Model: "decay", Method: "heun", Dt: 0.01, Horizon: 5.0,
			InitState: InitStateConfig{Y0: 1.0},
			Control:   ControlConfig{H0: 0.01, Tol: 1e-4, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
		"adaptive": {
			Model: "decay", Method: "heun", Adaptive: true, Dt: 0.01, Horizon: 5.0,
			InitState: InitStateConfig{Y0: 1.0},
			Control:   ControlConfig{H0: 0.01, Tol: 1e-4, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
	},
	"oscillator": {
		"default": {
			Model: "oscillator", Method: "rk4", Dt: 0.01, Horizon: 20.0,
			InitState: InitStateConfig{Pos: 1.0, Vel: 0.0},
			Control:   ControlConfig{H0: 0.01, Tol: 1e-5, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
	},
	"logistic": {
		"default": {
			Model: "logistic", Method: "heun", Dt: 0.01, Horizon: 10.0,
			InitState: InitStateConfig{Y0: 0.1},
			Control:   ControlConfig{H0: 0.01, Tol: 1e-4, Shrink: 0.9, Growth: 1.1, MaxRejects: 10000, LegacyShrink: true},
		},
	},
}

func GetPreset(model, name string) *Config {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(model string) []string {
	group, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
