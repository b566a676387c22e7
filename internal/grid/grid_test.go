package grid

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	if err != nil {
		t.Fatalf("new %dx%d: %v", rows, cols, err)
	}
	return g
}

func TestNewZeroFilled(t *testing.T) {
	g := mustNew(t, 3, 4)
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("expected 3x4, got %dx%d", g.Rows(), g.Cols())
	}
	if g.Sum() != 0 {
		t.Errorf("expected zero-filled grid, got sum %d", g.Sum())
	}
}

func TestNewInvalidShape(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"negative rows", -1, 4},
		{"negative cols", 4, -1},
		{"too large", MaxCells, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols)
			if !errors.Is(err, ErrShape) {
				t.Errorf("expected ErrShape, got %v", err)
			}
		})
	}
}

func TestNewZeroArea(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 5}, {5, 0}} {
		g := mustNew(t, shape[0], shape[1])
		if g.Sum() != 0 {
			t.Errorf("%v: expected empty grid", shape)
		}
		g.Flip()
		g.ClearRows(0, 10)
	}
}

func TestGetSetBounds(t *testing.T) {
	g := mustNew(t, 2, 3)

	if err := g.Set(1, 2, 7); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	v, err := g.Get(1, 2)
	if err != nil || v != 7 {
		t.Errorf("expected 7, got %d (%v)", v, err)
	}

	bad := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}}
	for _, rc := range bad {
		if _, err := g.Get(rc[0], rc[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("get %v: expected ErrOutOfBounds, got %v", rc, err)
		}
		err := g.Set(rc[0], rc[1], 1)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Fatalf("set %v: expected IndexError, got %v", rc, err)
		}
		if ie.Row != rc[0] || ie.Col != rc[1] {
			t.Errorf("expected coordinates %v, got (%d,%d)", rc, ie.Row, ie.Col)
		}
	}
}

func TestRowAliasesGrid(t *testing.T) {
	g := mustNew(t, 3, 3)
	g.Row(1)[2] = 5
	if v, _ := g.Get(1, 2); v != 5 {
		t.Errorf("expected write through row slice, got %d", v)
	}
	if len(g.Row(2)) != 3 || cap(g.Row(0)) != 3 {
		t.Error("row slice must be exactly one row long")
	}
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name string
		rows int
	}{
		{"even", 4},
		{"odd", 5},
		{"single", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNew(t, tt.rows, 2)
			for i := 0; i < tt.rows; i++ {
				g.Row(i)[0] = i
				g.Row(i)[1] = 10 * i
			}
			g.Flip()
			for i := 0; i < tt.rows; i++ {
				want := tt.rows - 1 - i
				if g.Row(i)[0] != want || g.Row(i)[1] != 10*want {
					t.Errorf("row %d: expected %d, got %v", i, want, g.Row(i))
				}
			}
		})
	}
}

func TestClearRows(t *testing.T) {
	g := mustNew(t, 4, 2)
	for i := 0; i < 4; i++ {
		g.Row(i)[0], g.Row(i)[1] = 1, 1
	}
	g.ClearRows(-2, 2)
	if g.Sum() != 4 {
		t.Errorf("expected rows 2..3 untouched, sum %d", g.Sum())
	}
	g.ClearRows(3, 99)
	if g.Sum() != 2 {
		t.Errorf("expected only row 2 left, sum %d", g.Sum())
	}
}

func TestResizeTopLeft(t *testing.T) {
	g := mustNew(t, 3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g.Row(i)[j] = 3*i + j + 1
		}
	}

	small, err := g.Resize(2, 2, nil)
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	want := [][]int{{1, 2}, {4, 5}}
	for i, row := range want {
		for j, v := range row {
			if got := small.Row(i)[j]; got != v {
				t.Errorf("(%d,%d): expected %d, got %d", i, j, v, got)
			}
		}
	}

	big, err := small.Resize(4, 5, CopyTopLeft)
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if big.Rows() != 4 || big.Cols() != 5 {
		t.Fatalf("expected 4x5, got %dx%d", big.Rows(), big.Cols())
	}
	if big.Sum() != 1+2+4+5 {
		t.Errorf("expected new cells zero-filled, sum %d", big.Sum())
	}
}

func TestResizeCustomCopy(t *testing.T) {
	g := mustNew(t, 2, 2)
	var gotRows, gotCols int
	_, err := g.Resize(5, 1, func(dst, src *Grid, rows, cols int) {
		gotRows, gotCols = rows, cols
	})
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if gotRows != 2 || gotCols != 1 {
		t.Errorf("expected copy limits 2x1, got %dx%d", gotRows, gotCols)
	}
}

func TestResizeLine(t *testing.T) {
	line := []uint8{1, 0, 1}
	if got := ResizeLine(line, 5); len(got) != 5 || got[2] != 1 || got[3] != 0 || got[4] != 0 {
		t.Errorf("grow: got %v", got)
	}
	if got := ResizeLine(line, 2); len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("shrink: got %v", got)
	}
	if got := ResizeLine(line, 0); len(got) != 0 {
		t.Errorf("zero: got %v", got)
	}
}
