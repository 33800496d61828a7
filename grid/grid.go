// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Bounds is anything that can tell whether a coordinate lies inside it.
// The adjacency functions only need the shape of a grid, not its values,
// so they accept Bounds; *Grid[T] and Shape both implement it.
type Bounds interface {
	InBounds(c Coordinate) bool
}

// Shape is the width and height of a grid, detached from its cells.
type Shape struct {
	Width, Height int
}

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (s Shape) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < s.Width && c.Y >= 0 && c.Y < s.Height
}

// Grid is a rectangular block of cells of type T.
//
// Cells live in one row-major buffer (offset = y*width + x). The shape is
// fixed by New or Filled and never changes; cell values may be mutated in
// place through Set, Put, Ref or the row slices yielded by Rows.
// A Grid is not safe for concurrent mutation: use one writer or many readers.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New builds a Grid from rows of equal length. The input is copied, so the
// caller may reuse rows afterwards.
//
// Zero rows is valid and yields a 0×0 grid. Rows of length zero are also
// valid (height = len(rows), width = 0). Any row whose length differs from
// the first row's fails with ErrRaggedRows.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has length %d, want %d: %w", y, len(row), w, ErrRaggedRows)
		}
	}
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Filled builds a width×height grid with every cell set to v.
// Returns ErrNegativeDimension if either dimension is negative and
// ErrTooLarge if width×height does not fit in an int.
func Filled[T any](width, height int, v T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrNegativeDimension)
	}
	if height != 0 && width > math.MaxInt/height {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrTooLarge)
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Shape returns the grid's dimensions.
func (g *Grid[T]) Shape() Shape {
	return Shape{Width: g.width, Height: g.height}
}

// InBounds reports whether c addresses a cell of g.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// index maps c to its row-major offset. c must be in bounds.
func (g *Grid[T]) index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// Get returns the cell at c. ok is false when c is outside the grid;
// that is an ordinary answer, not an error.
func (g *Grid[T]) Get(c Coordinate) (v T, ok bool) {
	if !g.InBounds(c) {
		return v, false
	}

	return g.cells[g.index(c)], true
}

// Ref returns a pointer to the cell at c for in-place mutation, or
// (nil, false) when c is outside the grid. The pointer must not be kept
// beyond the current mutation.
func (g *Grid[T]) Ref(c Coordinate) (*T, bool) {
	if !g.InBounds(c) {
		return nil, false
	}

	return &g.cells[g.index(c)], true
}

// Set stores v at c and reports whether c was inside the grid.
func (g *Grid[T]) Set(c Coordinate, v T) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.index(c)] = v

	return true
}

// At returns the cell at c. It panics if c is out of range: callers must
// have validated c already, e.g. by obtaining it from Neighbors.
func (g *Grid[T]) At(c Coordinate) T {
	g.mustContain(c)

	return g.cells[g.index(c)]
}

// Put stores v at c. Like At, it panics if c is out of range.
func (g *Grid[T]) Put(c Coordinate, v T) {
	g.mustContain(c)
	g.cells[g.index(c)] = v
}

// mustContain panics on an out-of-range coordinate. Without it an X past
// the row end would silently address the next row of the flat buffer.
func (g *Grid[T]) mustContain(c Coordinate) {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: coordinate %v out of range for %dx%d grid", c, g.width, g.height))
	}
}

// Row returns row y as a slice sharing storage with g; writes through it
// update the grid. The slice is capped at the row end. Row panics if y is
// out of range.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: row %d out of range for %dx%d grid", y, g.width, g.height))
	}
	start, end := y*g.width, (y+1)*g.width

	return g.cells[start:end:end]
}

// Rows yields each row index with its row, top to bottom. Rows are views
// into g, as returned by Row.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := 0; y < g.height; y++ {
			if !yield(y, g.Row(y)) {
				return
			}
		}
	}
}

// All yields every coordinate with its cell value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		for i, v := range g.cells {
			if !yield(Coordinate{X: i % g.width, Y: i / g.width}, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the cell buffer. Values of T themselves are
// copied shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, cells: slices.Clone(g.cells)}
}

// Map builds a new grid of the same shape by applying fn to every cell.
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(v)
	}

	return &Grid[U]{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether a and b have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.width == b.width && a.height == b.height && slices.Equal(a.cells, b.cells)
}
