package config

import "sort"

var Presets = map[string]*Config{
	"campfire": {
		Glyph: "@", FPS: 20, MaxTemp: 10, Rule: 60, FlickerOdds: 30,
		Palette: "auto", Backend: "tea",
	},
	"inferno": {
		Glyph: "#", FPS: 30, MaxTemp: 18, Rule: 60, FlickerOdds: 20,
		Palette: "doom", Backend: "tea",
	},
	"embers": {
		Glyph: "*", FPS: 12, MaxTemp: 5, Rule: 60, FlickerOdds: 15,
		Palette: "classic", Backend: "tea",
	},
	"chaos": {
		Glyph: "@", FPS: 20, MaxTemp: 12, Rule: 30, FlickerOdds: 30,
		Palette: "auto", Backend: "tea",
	},
	"pulse": {
		Glyph: "%", FPS: 20, MaxTemp: 10, Rule: 90, FlickerOdds: 60,
		Palette: "x256", Backend: "tea",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
