// Package export writes fire frames and metric series as SVG.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/fireplace/internal/grid"
	"github.com/san-kum/fireplace/internal/palette"
)

// HexColor converts a palette colour to "#rrggbb". xterm indices are
// resolved through the standard 256-colour table.
func HexColor(c string) string {
	if strings.HasPrefix(c, "#") {
		return c
	}
	n, err := strconv.Atoi(c)
	if err != nil || n < 0 || n > 255 {
		return "#000000"
	}
	r, g, b := xtermRGB(n)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

var ansi16 = [16][3]int{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func xtermRGB(n int) (r, g, b int) {
	switch {
	case n < 16:
		c := ansi16[n]
		return c[0], c[1], c[2]
	case n < 232:
		n -= 16
		level := func(v int) int {
			if v == 0 {
				return 0
			}
			return 55 + 40*v
		}
		return level(n / 36), level(n / 6 % 6), level(n % 6)
	default:
		v := 8 + 10*(n-232)
		return v, v, v
	}
}

// FieldToSVG draws one cell-sized rectangle per burning cell.
func FieldToSVG(field *grid.Grid, p palette.Palette, maxTemp int, scale float64) string {
	if field == nil || field.Rows() == 0 || field.Cols() == 0 {
		return ""
	}

	// terminal cells are about twice as tall as wide
	cw, ch := scale, scale*2
	width := float64(field.Cols()) * cw
	height := float64(field.Rows()) * ch

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, HexColor(p.Background)))

	for r := 0; r < field.Rows(); r++ {
		for c, heat := range field.Row(r) {
			if heat <= 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(c)*cw, float64(r)*ch, cw, ch, HexColor(p.Color(heat, maxTemp))))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG plots values against their index as a single path.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	span *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	step := float64(width) / float64(len(values)-1)
	for i, v := range values {
		x := float64(i) * step
		y := float64(height) - (v-lo)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
