package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDx      = 0.025
	DefaultHdx     = 1.3
	DefaultRho0    = 1.0
	DefaultC0      = 1400.0
	DefaultGamma   = 7.0
	DefaultAlpha   = 0.1
	DefaultBeta    = 0.0
	DefaultXSPHEps = 0.5
	DefaultDt      = 5e-6
	DefaultTFinal  = 0.0076
)

type Config struct {
	Case        string  `yaml:"case"`
	Dx          float64 `yaml:"dx"`
	Hdx         float64 `yaml:"hdx"`
	Rho0        float64 `yaml:"rho0"`
	C0          float64 `yaml:"c0"`
	Gamma       float64 `yaml:"gamma"`
	Alpha       float64 `yaml:"alpha"`
	Beta        float64 `yaml:"beta"`
	XSPHEps     float64 `yaml:"xsph_eps"`
	Dt          float64 `yaml:"dt"`
	TFinal      float64 `yaml:"tf"`
	Integrator  string  `yaml:"integrator"`
	NNPS        string  `yaml:"nnps"`
	Adaptive    bool    `yaml:"adaptive"`
	CFL         float64 `yaml:"cfl"`
	OutputEvery int     `yaml:"output_every"`
}

func DefaultConfig() *Config {
	return &Config{
		Case:        "elliptical_drop",
		Dx:          DefaultDx,
		Hdx:         DefaultHdx,
		Rho0:        DefaultRho0,
		C0:          DefaultC0,
		Gamma:       DefaultGamma,
		Alpha:       DefaultAlpha,
		Beta:        DefaultBeta,
		XSPHEps:     DefaultXSPHEps,
		Dt:          DefaultDt,
		TFinal:      DefaultTFinal,
		Integrator:  "pec",
		NNPS:        "linked_cell",
		CFL:         0.3,
		OutputEvery: 100,
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

// H0 is the reference smoothing length, hdx scaled by the particle spacing.
func (c *Config) H0() float64 {
	return c.Hdx * c.Dx
}
