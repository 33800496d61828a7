// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coordinate is a cell position: Y is the row index, X the column index.
// Both components are non-negative; Offset is the only way this package
// derives one coordinate from another and it refuses to step below zero.
type Coordinate struct {
	X, Y int
}

// NewCoordinate is shorthand for Coordinate{X: x, Y: y}.
func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// ParseCoordinate parses the "x,y" form, e.g. "3,7". Surrounding spaces are
// ignored. Negative components are rejected with ErrInvalidCoordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: %q: missing comma", ErrInvalidCoordinate, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoordinate, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %q: %v", ErrInvalidCoordinate, s, err)
	}
	if x < 0 || y < 0 {
		return Coordinate{}, fmt.Errorf("%w: %q: negative component", ErrInvalidCoordinate, s)
	}

	return Coordinate{X: x, Y: y}, nil
}

// String renders the coordinate as "(x, y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Offset returns the coordinate one step away in direction d.
// ok is false when d is not a valid Direction or when the step would take
// a component below zero or past math.MaxInt; the returned Coordinate is
// then the zero value.
// Complexity: O(1).
func (c Coordinate) Offset(d Direction) (next Coordinate, ok bool) {
	if !d.IsValid() {
		return Coordinate{}, false
	}
	dy, dx := d.Delta()
	y, ok := shift(c.Y, dy)
	if !ok {
		return Coordinate{}, false
	}
	x, ok := shift(c.X, dx)
	if !ok {
		return Coordinate{}, false
	}

	return Coordinate{X: x, Y: y}, true
}

// shift adds delta to v, reporting absence instead of leaving [0, MaxInt].
func shift(v, delta int) (int, bool) {
	switch {
	case v < 0:
		return 0, false
	case delta < 0 && v < -delta:
		return 0, false
	case delta > 0 && v > math.MaxInt-delta:
		return 0, false
	}

	return v + delta, true
}

// Distance is the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	dx := float64(c.X) - float64(o.X)
	dy := float64(c.Y) - float64(o.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Compare orders coordinates row-major: by Y, then by X.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}

	return cmp.Compare(a.X, b.X)
}

// Less reports whether c sorts before o in row-major order.
func (c Coordinate) Less(o Coordinate) bool {
	return Compare(c, o) < 0
}
