// Package grid provides the heat buffers of the fire simulation.
//
// A [Grid] is a single contiguous row-major slice of non-negative heat
// values. Access through [Grid.Get] and [Grid.Set] is bounds-checked and
// reports [ErrOutOfBounds]; the engine's inner loops use [Grid.Row], which
// hands out the backing slice of one row.
//
// Resizing always allocates a fresh grid. The [CopyFunc] passed to
// [Grid.Resize] decides how the overlapping region is carried over;
// [CopyTopLeft] is the default.
package grid
