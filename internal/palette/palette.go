// Package palette maps heat to flame colours.
//
// Colours are kept as strings a terminal library can parse: "#rrggbb" for
// truecolor and a decimal index for the xterm 256-colour table.
package palette

import "sort"

type Palette struct {
	Name       string
	Background string
	Colors     []string
}

func (p Palette) Size() int { return len(p.Colors) }

// Color returns the colour for heat on a scale topping out at maxTemp.
func (p Palette) Color(heat, maxTemp int) string {
	return p.Colors[Bucket(heat, maxTemp, len(p.Colors))-1]
}

// Bucket maps heat to a 1-based colour index in [1, size]. Anything at or
// above maxTemp lands in the hottest bucket.
func Bucket(heat, maxTemp, size int) int {
	maxTemp = max(maxTemp, 1)
	return max(min(size, size*heat/maxTemp+1), 1)
}

var (
	// Classic is the eight-colour ramp for terminals without 256 colours.
	Classic = Palette{
		Name:       "classic",
		Background: "#191919",
		Colors: []string{
			"#4c0000", "#7f0000", "#b21900", "#e54c00",
			"#ff7f19", "#ffcc7f", "#ffffff",
		},
	}

	// X256 is a gradient through the xterm 256-colour table.
	X256 = Palette{
		Name:       "x256",
		Background: "233",
		Colors: []string{
			"52", "88", "124", "160", "166", "202", "208",
			"214", "220", "226", "227", "228", "229", "230", "231",
		},
	}

	// Doom follows the classic PSX fire ramp in truecolor.
	Doom = Palette{
		Name:       "doom",
		Background: "#070707",
		Colors: []string{
			"#1f0707", "#470f07", "#771f07", "#9f2f07", "#bf4707", "#df4f07",
			"#d75f07", "#cf6f0f", "#cf8717", "#c7971f", "#bfa727", "#b7b737",
			"#cfcf6f", "#efefc7", "#ffffff",
		},
	}
)

var registry = map[string]Palette{
	Classic.Name: Classic,
	X256.Name:    X256,
	Doom.Name:    Doom,
}

func Lookup(name string) (Palette, bool) {
	p, ok := registry[name]
	return p, ok
}

// Resolve returns the named palette. "auto" and unknown names pick by how
// many colours the terminal can show.
func Resolve(name string, colors int) Palette {
	if p, ok := Lookup(name); ok {
		return p
	}
	if colors >= 256 {
		return X256
	}
	return Classic
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
