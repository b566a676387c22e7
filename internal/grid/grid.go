package grid

import "fmt"

// MaxCells caps a single allocation. Terminals never get close; anything
// larger is a corrupt size report.
const MaxCells = 1 << 26

// CopyFunc transfers the overlapping rows x cols region from src into dst.
type CopyFunc func(dst, src *Grid, rows, cols int)

type Grid struct {
	rows, cols int
	cells      []int
}

// New allocates a zero-filled rows x cols grid. A zero dimension yields a
// valid empty grid.
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if rows > 0 && cols > MaxCells/rows {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrShape, rows, cols, MaxCells)
	}
	return &Grid{rows: rows, cols: cols, cells: make([]int, rows*cols)}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) Get(r, c int) (int, error) {
	if !g.inBounds(r, c) {
		return 0, &IndexError{Row: r, Col: c, Rows: g.rows, Cols: g.cols}
	}
	return g.cells[r*g.cols+c], nil
}

func (g *Grid) Set(r, c, v int) error {
	if !g.inBounds(r, c) {
		return &IndexError{Row: r, Col: c, Rows: g.rows, Cols: g.cols}
	}
	g.cells[r*g.cols+c] = v
	return nil
}

// Row returns the backing slice of row r. Writes go straight to the grid.
func (g *Grid) Row(r int) []int {
	return g.cells[r*g.cols : (r+1)*g.cols : (r+1)*g.cols]
}

// ClearRows zeroes rows [from, to), clipped to the grid.
func (g *Grid) ClearRows(from, to int) {
	from = max(from, 0)
	to = min(to, g.rows)
	if from >= to {
		return
	}
	clear(g.cells[from*g.cols : to*g.cols])
}

// Flip mirrors the grid vertically in place: row i swaps with row rows-1-i.
func (g *Grid) Flip() {
	for i := 0; i < g.rows/2; i++ {
		top, bottom := g.Row(i), g.Row(g.rows-1-i)
		for j := range top {
			top[j], bottom[j] = bottom[j], top[j]
		}
	}
}

// Sum returns the total heat held by the grid.
func (g *Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Resize allocates a zero-filled rows x cols grid and lets fn copy the
// overlapping min(old,new) region into it. A nil fn means CopyTopLeft.
// The receiver is left untouched; callers drop it in favour of the result.
func (g *Grid) Resize(rows, cols int, fn CopyFunc) (*Grid, error) {
	resized, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		fn = CopyTopLeft
	}
	fn(resized, g, min(g.rows, rows), min(g.cols, cols))
	return resized, nil
}

// CopyTopLeft copies the top-left rows x cols block of src into dst.
func CopyTopLeft(dst, src *Grid, rows, cols int) {
	for i := 0; i < rows; i++ {
		copy(dst.Row(i)[:cols], src.Row(i)[:cols])
	}
}

// ResizeLine returns a zero-filled slice of length n holding the first
// min(len(line), n) elements of line.
func ResizeLine[T any](line []T, n int) []T {
	out := make([]T, n)
	copy(out, line)
	return out
}
