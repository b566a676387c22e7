package viz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fireplace/internal/palette"
	"github.com/san-kum/fireplace/internal/sim"
)

type TickMsg time.Time

type Options struct {
	// Period between frames; 0 ticks as fast as the program can render.
	Period time.Duration
	// Status shows max temp, rule and frame on the last line.
	Status bool
}

// Model drives a runner from Bubble Tea. The runner owns the simulation;
// the model only forwards events and schedules ticks.
type Model struct {
	runner      *sim.Runner
	display     *Display
	opts        Options
	statusStyle lipgloss.Style
	err         error
}

func NewModel(runner *sim.Runner, display *Display, opts Options) Model {
	return Model{
		runner:      runner,
		display:     display,
		opts:        opts,
		statusStyle: newStatusStyle(display.renderer),
	}
}

// Err is the error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.opts.Period <= 0 {
		return func() tea.Msg { return TickMsg(time.Now()) }
	}
	return tea.Tick(m.opts.Period, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update queues keys and resize notices for the runner and advances it on
// every tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.display.SetWindow(msg.Width, msg.Height)
		m.runner.NotifyResize()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.display.push(sim.KeyQuit)
		case "k", "up":
			m.display.push(sim.KeyHotter)
		case "j", "down":
			m.display.push(sim.KeyCooler)
		case "p":
			m.display.SetPalette(nextPalette(m.display.Palette()))
		}
	case TickMsg:
		if err := m.runner.Tick(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if m.runner.Done() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	view := m.display.view()
	if !m.opts.Status {
		return view
	}
	e := m.runner.Engine()
	fps := "max"
	if m.opts.Period > 0 {
		fps = fmt.Sprintf("%d", time.Second/m.opts.Period)
	}
	line := fmt.Sprintf(" temp %d  rule %d  fps %s  frame %d  palette %s ",
		e.MaxTemp(), e.Heater().Rule(), fps, e.Frame(), m.display.Palette().Name)
	return view + "\n" + m.statusStyle.Render(line)
}

func nextPalette(cur palette.Palette) palette.Palette {
	names := palette.Names()
	for i, name := range names {
		if name == cur.Name {
			p, _ := palette.Lookup(names[(i+1)%len(names)])
			return p
		}
	}
	p, _ := palette.Lookup(names[0])
	return p
}

// Run shows the fire on the alternate screen until the runner stops or ctx
// is cancelled.
func Run(ctx context.Context, runner *sim.Runner, display *Display, opts Options) error {
	p := tea.NewProgram(NewModel(runner, display, opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run display: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
