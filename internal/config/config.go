package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 0.01
	DefaultHorizon = 10.0
	DefaultH0      = 0.01
	DefaultTol     = 1e-4
	DefaultShrink  = 0.9
	DefaultGrowth  = 1.1
)

type Config struct {
	Model     string          `yaml:"model"`
	Method    string          `yaml:"method"`
	Adaptive  bool            `yaml:"adaptive"`
	Dt        float64         `yaml:"dt"`
	Horizon   float64         `yaml:"horizon"`
	InitState InitStateConfig `yaml:"init_state"`
	Control   ControlConfig   `yaml:"control"`
}

type InitStateConfig struct {
	V0  float64 `yaml:"v0"`
	Y0  float64 `yaml:"y0"`
	Pos float64 `yaml:"pos"`
	Vel float64 `yaml:"vel"`
}

type ControlConfig struct {
	H0           float64 `yaml:"h0"`
	Tol          float64 `yaml:"tol"`
	Shrink       float64 `yaml:"shrink"`
	Growth       float64 `yaml:"growth"`
	MaxRejects   int     `yaml:"max_rejects"`
	LegacyShrink bool    `yaml:"legacy_shrink"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:   "freefall",
		Method:  "heun",
		Dt:      DefaultDt,
		Horizon: DefaultHorizon,
		InitState: InitStateConfig{
			Y0:  1.0,
			Pos: 1.0,
		},
		Control: ControlConfig{
			H0:           DefaultH0,
			Tol:          DefaultTol,
			Shrink:       DefaultShrink,
			Growth:       DefaultGrowth,
			MaxRejects:   10000,
			LegacyShrink: true,
		},
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

func (c *Config) GetInitState() []float64 {
	switch c.Model {
	case "oscillator":
		return []float64{c.InitState.Pos, c.InitState.Vel}
	case "decay", "logistic":
		return []float64{c.InitState.Y0}
	default:
		return []float64{c.InitState.V0}
	}
}
