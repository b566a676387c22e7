// Package term draws the fire with tcell.
package term

import (
	"strconv"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/fireplace/internal/palette"
	"github.com/san-kum/fireplace/internal/sim"
)

// Screen implements sim.Display on a tcell screen. Input arrives on a
// polling goroutine and is only queued; drawing happens in Render.
type Screen struct {
	screen  tcell.Screen
	palette palette.Palette

	cold    tcell.Style
	buckets []tcell.Style

	mu       sync.Mutex
	keys     []rune
	onResize func()
	done     chan struct{}
}

// Open initialises the terminal. Close must be called to restore it.
func Open(paletteName string) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return New(s, paletteName), nil
}

// New wraps an initialised screen.
func New(s tcell.Screen, paletteName string) *Screen {
	p := palette.Resolve(paletteName, s.Colors())
	bg := ParseColor(p.Background)

	scr := &Screen{
		screen:  s,
		palette: p,
		cold:    tcell.StyleDefault.Background(bg),
		buckets: make([]tcell.Style, len(p.Colors)),
		done:    make(chan struct{}),
	}
	for i, c := range p.Colors {
		scr.buckets[i] = tcell.StyleDefault.Foreground(ParseColor(c)).Background(bg).Bold(true)
	}

	s.SetStyle(scr.cold)
	s.HideCursor()
	s.Clear()
	return scr
}

// ParseColor accepts "#rrggbb", a colour name, or an xterm palette index.
func ParseColor(s string) tcell.Color {
	if n, err := strconv.Atoi(s); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(s)
}

func (s *Screen) Palette() palette.Palette { return s.palette }

// Start polls terminal events until Close. onResize is called from the
// polling goroutine and must only record the event.
func (s *Screen) Start(onResize func()) {
	s.mu.Lock()
	s.onResize = onResize
	s.mu.Unlock()

	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			s.handle(ev)
		}
	}()
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.mu.Lock()
		fn := s.onResize
		s.mu.Unlock()
		if fn != nil {
			fn()
		}
	case *tcell.EventKey:
		if key, ok := translateKey(ev); ok {
			s.mu.Lock()
			s.keys = append(s.keys, key)
			s.mu.Unlock()
		}
	}
}

func translateKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return sim.KeyQuit, true
	case tcell.KeyUp:
		return sim.KeyHotter, true
	case tcell.KeyDown:
		return sim.KeyCooler, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0 {
			return sim.KeyQuit, true
		}
		switch r {
		case sim.KeyQuit, sim.KeyHotter, sim.KeyCooler:
			return r, true
		}
	}
	return 0, false
}

func (s *Screen) Size() (rows, cols int) {
	w, h := s.screen.Size()
	return h, w
}

func (s *Screen) Resize(rows, cols int) {
	s.screen.Sync()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Render draws rows from f.From down. Rows above it stay cold between
// clears, so they are left alone.
func (s *Screen) Render(f sim.Frame) error {
	size := len(s.buckets)
	for r := f.From; r < f.Field.Rows(); r++ {
		for c, heat := range f.Field.Row(r) {
			if heat <= 0 {
				s.screen.SetContent(c, r, ' ', nil, s.cold)
				continue
			}
			style := s.buckets[palette.Bucket(heat, f.MaxTemp, size)-1]
			s.screen.SetContent(c, r, f.Glyph, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *Screen) PollKey() (rune, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return 0, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.done)
	s.screen.Fini()
}
