package config

import "sort"

// Presets are named variations on the default tuning. They change the
// feel of the dance, not the mechanics.
var presets = map[string]func(*Config){
	// the stock configuration
	"classic": func(cfg *Config) {},

	// weaker pull, slower start: long lazy orbits
	"gentle": func(cfg *Config) {
		cfg.Tuning.G = 0.2
		cfg.Tuning.SpeedMax = 0.15
	},

	// strong pull, fast bodies, generous escape limit
	"wild": func(cfg *Config) {
		cfg.Tuning.G = 0.8
		cfg.Tuning.SpeedMin = 0.1
		cfg.Tuning.SpeedMax = 0.5
		cfg.Tuning.DivergenceFactor = 2.2
	},

	// heavy bodies with long trails
	"heavy": func(cfg *Config) {
		cfg.Tuning.MassMin = 50
		cfg.Tuning.MassMax = 90
		cfg.Tuning.TrailCap = 120
	},
}

// GetPreset returns the named preset applied over defaults, or nil if
// it does not exist.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := Default()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
