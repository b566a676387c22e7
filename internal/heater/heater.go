// Package heater implements the flickering heat source under the fire: a
// one-dimensional elementary cellular automaton with circular wraparound
// whose lit cells feed the hotplate.
package heater

import "github.com/san-kum/fireplace/internal/grid"

const (
	// DefaultRule flickers nicely: every cell becomes left XOR center.
	DefaultRule Rule = 60

	// DefaultFlickerOdds is the 1-in-N chance per frame of toggling one
	// random cell so the pattern never settles.
	DefaultFlickerOdds = 30
)

// Source is the slice of math/rand the automaton needs.
type Source interface {
	Intn(n int) int
}

// Rule is a Wolfram rule byte: bit k is the next state for neighbourhood k,
// where k = left<<2 | center<<1 | right.
type Rule uint8

func (r Rule) Next(left, center, right uint8) uint8 {
	k := left<<2 | center<<1 | right
	return uint8(r>>k) & 1
}

type Automaton struct {
	rule  Rule
	cells []uint8
	next  []uint8
	src   Source
	odds  int
}

// New returns an automaton of cols cells, each lit at random from src.
// A nil src leaves every cell dark and disables the flicker.
func New(cols int, rule Rule, src Source) *Automaton {
	a := &Automaton{
		rule:  rule,
		cells: make([]uint8, cols),
		next:  make([]uint8, cols),
		src:   src,
		odds:  DefaultFlickerOdds,
	}
	if src != nil {
		for i := range a.cells {
			a.cells[i] = uint8(src.Intn(2))
		}
	}
	return a
}

// SetFlickerOdds changes the 1-in-n perturbation chance; n <= 0 disables it.
func (a *Automaton) SetFlickerOdds(n int) { a.odds = n }

// Load replaces the cell states. Values other than 0 count as lit.
func (a *Automaton) Load(cells []uint8) {
	a.cells = make([]uint8, len(cells))
	a.next = make([]uint8, len(cells))
	for i, c := range cells {
		if c != 0 {
			a.cells[i] = 1
		}
	}
}

func (a *Automaton) Rule() Rule     { return a.rule }
func (a *Automaton) SetRule(r Rule) { a.rule = r }
func (a *Automaton) Cells() []uint8 { return a.cells }
func (a *Automaton) Len() int       { return len(a.cells) }

// Lit counts the cells currently on.
func (a *Automaton) Lit() int {
	n := 0
	for _, c := range a.cells {
		n += int(c)
	}
	return n
}

// Evolve applies the rule to every cell from the same snapshot.
func (a *Automaton) Evolve() {
	n := len(a.cells)
	for i := 0; i < n; i++ {
		left := a.cells[(i-1+n)%n]
		right := a.cells[(i+1)%n]
		a.next[i] = a.rule.Next(left, a.cells[i], right)
	}
	a.cells, a.next = a.next, a.cells
}

// Perturb toggles one random cell with probability 1/odds and reports
// whether it did.
func (a *Automaton) Perturb() bool {
	if a.src == nil || a.odds <= 0 || len(a.cells) == 0 {
		return false
	}
	if a.src.Intn(a.odds) != 0 {
		return false
	}
	a.cells[a.src.Intn(len(a.cells))] ^= 1
	return true
}

// Step is one frame: Evolve then Perturb.
func (a *Automaton) Step() {
	a.Evolve()
	a.Perturb()
}

// Resize keeps the first min(old, cols) cells; new cells start dark.
func (a *Automaton) Resize(cols int) {
	a.cells = grid.ResizeLine(a.cells, cols)
	a.next = make([]uint8, cols)
}
