package config

var Presets = map[string]map[string]*Config{
	"elliptical_drop": {
		"coarse": {
			Case: "elliptical_drop", Dx: 0.05, Hdx: 1.3, Dt: 1e-5, TFinal: 0.0076,
		},
		"standard": {
			Case: "elliptical_drop", Dx: 0.025, Hdx: 1.3, Dt: 5e-6, TFinal: 0.0076,
		},
		"fine": {
			Case: "elliptical_drop", Dx: 0.0125, Hdx: 1.3, Dt: 2.5e-6, TFinal: 0.0076,
		},
	},
	"square_drop": {
		"standard": {
			Case: "square_drop", Dx: 0.025, Hdx: 1.3, Dt: 5e-6, TFinal: 0.0076,
		},
	},
}

// GetPreset returns the named preset completed with defaults for every
// field the preset leaves zero, or nil if unknown.
func GetPreset(caseName, preset string) *Config {
	casePresets, ok := Presets[caseName]
	if !ok {
		return nil
	}
	p, ok := casePresets[preset]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Case = p.Case
	if p.Dx != 0 {
		cfg.Dx = p.Dx
	}
	if p.Hdx != 0 {
		cfg.Hdx = p.Hdx
	}
	if p.Dt != 0 {
		cfg.Dt = p.Dt
	}
	if p.TFinal != 0 {
		cfg.TFinal = p.TFinal
	}
	return cfg
}

func ListPresets(caseName string) []string {
	casePresets, ok := Presets[caseName]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(casePresets))
	for name := range casePresets {
		names = append(names, name)
	}
	return names
}
