package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds indicates a cell access outside [0,rows) x [0,cols).
	ErrOutOfBounds = errors.New("grid: index out of bounds")

	// ErrShape indicates a negative or unallocatable grid shape.
	ErrShape = errors.New("grid: invalid shape")
)

// IndexError records the offending coordinates of an out-of-bounds access.
type IndexError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: index (%d,%d) outside %dx%d", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}
