package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/fireplace/internal/grid"
	"github.com/san-kum/fireplace/internal/palette"
	"github.com/san-kum/fireplace/internal/sim"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestParseColor(t *testing.T) {
	if got := ParseColor("52"); got != tcell.PaletteColor(52) {
		t.Errorf("expected palette colour 52, got %v", got)
	}
	if got := ParseColor("#ff0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("expected rgb red, got %v", got)
	}
}

func TestSizeIsRowsThenCols(t *testing.T) {
	scr := New(newSimScreen(t, 40, 12), "classic")
	rows, cols := scr.Size()
	if rows != 12 || cols != 40 {
		t.Errorf("expected 12x40, got %dx%d", rows, cols)
	}
}

func TestRenderDrawsFromHeightRecord(t *testing.T) {
	ss := newSimScreen(t, 4, 3)
	scr := New(ss, "classic")

	g, err := grid.New(3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 3; r++ {
		if err := g.Set(r, 1, 10); err != nil {
			t.Fatal(err)
		}
	}

	if err := scr.Render(sim.Frame{Field: g, Glyph: '@', MaxTemp: 10, From: 1}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if r, _, _, _ := ss.GetContent(1, 0); r == '@' {
		t.Error("row above From was drawn")
	}
	for row := 1; row < 3; row++ {
		r, _, style, _ := ss.GetContent(1, row)
		if r != '@' {
			t.Errorf("row %d: expected '@', got %q", row, r)
		}
		fg, _, _ := style.Decompose()
		want := ParseColor(palette.Classic.Colors[palette.Classic.Size()-1])
		if fg != want {
			t.Errorf("row %d: expected hottest colour, got %v", row, fg)
		}
		if r, _, _, _ := ss.GetContent(0, row); r != ' ' {
			t.Errorf("row %d: expected cold cell, got %q", row, r)
		}
	}
}

func TestKeysAreQueued(t *testing.T) {
	scr := New(newSimScreen(t, 10, 5), "classic")

	scr.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	scr.handle(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone))
	scr.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	scr.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	var got []rune
	for {
		k, ok := scr.PollKey()
		if !ok {
			break
		}
		got = append(got, k)
	}
	want := []rune{sim.KeyHotter, sim.KeyCooler, sim.KeyQuit}
	if string(got) != string(want) {
		t.Errorf("expected %q, got %q", string(want), string(got))
	}
}

func TestResizeEventOnlyNotifies(t *testing.T) {
	scr := New(newSimScreen(t, 10, 5), "classic")
	calls := 0
	scr.mu.Lock()
	scr.onResize = func() { calls++ }
	scr.mu.Unlock()

	scr.handle(tcell.NewEventResize(20, 8))
	if calls != 1 {
		t.Errorf("expected 1 notification, got %d", calls)
	}
	if _, ok := scr.PollKey(); ok {
		t.Error("resize should not queue a key")
	}
}
