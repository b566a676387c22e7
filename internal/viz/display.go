package viz

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/fireplace/internal/palette"
	"github.com/san-kum/fireplace/internal/sim"
)

// Display keeps one rendered string per fire row. Rows above the frame's
// From line are cold and collapse to a shared blank line.
type Display struct {
	mu sync.Mutex

	renderer *lipgloss.Renderer
	palette  palette.Palette
	styles   heatStyles

	width, height int
	status        bool

	lines []string
	cols  int
	blank string
	keys  []rune
}

// NewDisplay builds a display for p. With status set, the last terminal
// line is kept for the status bar.
func NewDisplay(r *lipgloss.Renderer, p palette.Palette, status bool) *Display {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Display{
		renderer: r,
		palette:  p,
		styles:   newHeatStyles(r, p),
		status:   status,
	}
}

// SetWindow records the terminal size. The fire buffers follow on the
// runner's next resize.
func (d *Display) SetWindow(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = max(width, 0), max(height, 0)
}

func (d *Display) Size() (rows, cols int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rows = d.height
	if d.status && rows > 0 {
		rows--
	}
	return rows, d.width
}

func (d *Display) Resize(rows, cols int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = make([]string, rows)
	d.cols = cols
	d.blank = d.styles.cold.Render(strings.Repeat(" ", cols))
	for i := range d.lines {
		d.lines[i] = d.blank
	}
}

func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.lines {
		d.lines[i] = d.blank
	}
}

func (d *Display) Render(f sim.Frame) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	rows := min(f.Field.Rows(), len(d.lines))
	for r := 0; r < rows; r++ {
		if r < f.From {
			d.lines[r] = d.blank
			continue
		}
		d.lines[r] = d.renderRow(f.Field.Row(r), f.Glyph, f.MaxTemp)
	}
	return nil
}

// renderRow emits one styled run per stretch of cells sharing a bucket.
func (d *Display) renderRow(row []int, glyph rune, maxTemp int) string {
	var b strings.Builder
	size := d.palette.Size()
	bucket, run := 0, 0

	flush := func() {
		if run == 0 {
			return
		}
		if bucket == 0 {
			b.WriteString(d.styles.cold.Render(strings.Repeat(" ", run)))
		} else {
			b.WriteString(d.styles.buckets[bucket-1].Render(strings.Repeat(string(glyph), run)))
		}
		run = 0
	}

	for _, heat := range row {
		k := 0
		if heat > 0 {
			k = palette.Bucket(heat, maxTemp, size)
		}
		if k != bucket {
			flush()
			bucket = k
		}
		run++
	}
	flush()
	return b.String()
}

func (d *Display) PollKey() (rune, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.keys) == 0 {
		return 0, false
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, true
}

func (d *Display) push(key rune) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = append(d.keys, key)
}

func (d *Display) Palette() palette.Palette {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.palette
}

// SetPalette swaps the colours. Rows pick them up as they are redrawn.
func (d *Display) SetPalette(p palette.Palette) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.palette = p
	d.styles = newHeatStyles(d.renderer, p)
	d.blank = d.styles.cold.Render(strings.Repeat(" ", d.cols))
}

func (d *Display) view() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return strings.Join(d.lines, "\n")
}
