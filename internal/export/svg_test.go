package export

import (
	"strings"
	"testing"

	"github.com/san-kum/fireplace/internal/grid"
	"github.com/san-kum/fireplace/internal/palette"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#4c0000", "#4c0000"},
		{"9", "#ff0000"},
		{"16", "#000000"},
		{"52", "#5f0000"},
		{"231", "#ffffff"},
		{"233", "#121212"},
		{"bogus", "#000000"},
	}
	for _, tt := range tests {
		if got := HexColor(tt.in); got != tt.want {
			t.Errorf("HexColor(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestFieldToSVG(t *testing.T) {
	g, err := grid.New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 2, 10); err != nil {
		t.Fatal(err)
	}
	if err := g.Set(0, 0, 1); err != nil {
		t.Fatal(err)
	}

	svg := FieldToSVG(g, palette.Classic, 10, 4)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if !strings.Contains(svg, `width="12" height="16"`) {
		t.Error("unexpected canvas size")
	}
	if n := strings.Count(svg, "<rect "); n != 3 {
		t.Errorf("expected background plus 2 cells, got %d rects", n)
	}
	if !strings.Contains(svg, `x="8.0" y="8.0"`) {
		t.Error("missing cell at row 1 col 2")
	}
	if !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("hottest cell should use the last palette colour")
	}
}

func TestFieldToSVGEmpty(t *testing.T) {
	g, err := grid.New(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if FieldToSVG(g, palette.Classic, 10, 4) != "" {
		t.Error("expected empty output for a zero-area field")
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("expected empty output for one value")
	}
	svg := SeriesToSVG([]float64{0, 5, 10}, 100, 50, "#ff7f19")
	if strings.Count(svg, " L") != 2 {
		t.Errorf("expected 2 line segments in %q", svg)
	}
	if !strings.Contains(svg, `stroke="#ff7f19"`) {
		t.Error("missing stroke colour")
	}
}
