package config

import (
	"sort"

	"github.com/san-kum/labelmaker/internal/annotate"
)

var presets = map[string]func() *Config{
	"simple": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "Single Dwell"
		cfg.Schedule = ScheduleConfig{
			Temps: []float64{25, 1200, 25},
			Times: []float64{5, 48, 4, 36, 5},
		}
		return cfg
	},
	"no_rates": func() *Config {
		cfg := sampleLabel()
		cfg.Schedule = ScheduleConfig{
			Temps: []float64{25, 650, 1200, 1000, 250, 25},
			Times: []float64{2, 6, 48, 24, 12, 12, 12, 24, 36, 6, 2},
		}
		return cfg
	},
	"rates": func() *Config {
		cfg := sampleLabel()
		cfg.Schedule = ScheduleConfig{
			Temps:  []float64{25, 650, 1200, 1000, 250, 25},
			Dwells: []float64{2, 48, 12, 12, 36, 2},
			Rates:  []float64{104.167, 22.917, 16.667, 31.25, 37.5},
		}
		return cfg
	},
	"single": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "Anneal"
		cfg.Schedule = ScheduleConfig{
			Temps: []float64{850},
			Times: []float64{24},
		}
		return cfg
	},
}

func sampleLabel() *Config {
	cfg := DefaultConfig()
	cfg.Identity = annotate.NewIdentity("Name", "JHED", annotate.WithPage("Page Number"))
	cfg.Date = DateConfig{StartDate: "20221218", StartTime: "245", EndDate: "20221219", EndTime: "1355"}
	cfg.Chemicals = annotate.Chemicals{Compound: "Superconductor", TransportAgent: "I2"}
	return cfg
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := presets[name]
	if !ok {
		return nil
	}
	return build()
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
