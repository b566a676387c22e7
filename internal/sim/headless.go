package sim

import "sync"

// Headless is a display of fixed size that draws nothing. It backs the
// stats command and tests.
type Headless struct {
	mu         sync.Mutex
	rows, cols int
	keys       []rune
	frames     int
	clears     int
	last       Frame
}

func NewHeadless(rows, cols int) *Headless {
	return &Headless{rows: rows, cols: cols}
}

// SetSize changes the size the next resize will pick up.
func (h *Headless) SetSize(rows, cols int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows, h.cols = rows, cols
}

// Press queues keys for PollKey.
func (h *Headless) Press(keys ...rune) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keys = append(h.keys, keys...)
}

func (h *Headless) Size() (int, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rows, h.cols
}

func (h *Headless) Resize(rows, cols int) {}

func (h *Headless) Render(f Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames++
	h.last = f
	return nil
}

func (h *Headless) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clears++
}

func (h *Headless) PollKey() (rune, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.keys) == 0 {
		return 0, false
	}
	k := h.keys[0]
	h.keys = h.keys[1:]
	return k, true
}

func (h *Headless) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

func (h *Headless) Clears() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clears
}

func (h *Headless) Last() Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}
