package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/san-kum/fireplace/internal/palette"
)

// PickPalette resolves a palette name. "auto" and unknown names choose by
// the colour depth of the terminal.
func PickPalette(name string, profile termenv.Profile) palette.Palette {
	colors := 16
	switch profile {
	case termenv.TrueColor, termenv.ANSI256:
		colors = 256
	case termenv.Ascii:
		colors = 2
	}
	return palette.Resolve(name, colors)
}

// heatStyles holds one style per palette bucket plus the style of cold
// cells.
type heatStyles struct {
	cold    lipgloss.Style
	buckets []lipgloss.Style
}

func newHeatStyles(r *lipgloss.Renderer, p palette.Palette) heatStyles {
	bg := lipgloss.Color(p.Background)
	s := heatStyles{
		cold:    r.NewStyle().Background(bg),
		buckets: make([]lipgloss.Style, len(p.Colors)),
	}
	for i, c := range p.Colors {
		s.buckets[i] = r.NewStyle().Foreground(lipgloss.Color(c)).Background(bg).Bold(true)
	}
	return s
}

func newStatusStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235"))
}
