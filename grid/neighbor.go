// SPDX-License-Identifier: MIT

package grid

import (
	"cmp"
	"iter"
)

// Neighbor is the answer to an adjacency query: the direction taken and the
// in-bounds position it leads to. It is a snapshot of the Bounds it was
// computed against and is not re-checked if those bounds change.
type Neighbor struct {
	Direction Direction
	Position  Coordinate
}

// String renders the neighbor as its arrow glyph followed by the position,
// e.g. "→(1, 0)".
func (n Neighbor) String() string {
	return string(n.Direction.Glyph()) + n.Position.String()
}

// Step continues one more cell in n's direction from n's position.
// ok is false once the walk leaves b.
// Complexity: O(1).
func (n Neighbor) Step(b Bounds) (next Neighbor, ok bool) {
	return NeighborInDirection(b, n.Direction, n.Position)
}

// NeighborInDirection returns the cell one step from pos in direction d.
//
// Steps toward the origin are checked for underflow before the bounds test,
// so a cell on the top row has no Up, UpperLeft or UpperRight neighbor and a
// cell in the left column has no Left, UpperLeft or LowerLeft neighbor.
// ok is false whenever the candidate is not inside b.
// Complexity: O(1).
func NeighborInDirection(b Bounds, d Direction, pos Coordinate) (n Neighbor, ok bool) {
	next, ok := pos.Offset(d)
	if !ok || !b.InBounds(next) {
		return Neighbor{}, false
	}

	return Neighbor{Direction: d, Position: next}, true
}

// Neighbors returns every in-bounds neighbor of pos. The orthogonal
// directions are always considered, the diagonal ones only when
// includeDiagonals is set. Results follow the order Up, Down, Left, Right,
// UpperLeft, UpperRight, LowerLeft, LowerRight with absent ones skipped;
// that order is stable for tests but carries no meaning.
//
// The result has 0–4 entries without diagonals and 0–8 with them.
// Complexity: O(d), d = 4 or 8.
func Neighbors(b Bounds, pos Coordinate, includeDiagonals bool) []Neighbor {
	dirs := Orthogonal()
	if includeDiagonals {
		dirs = All()
	}
	out := make([]Neighbor, 0, len(dirs))
	for _, d := range dirs {
		if n, ok := NeighborInDirection(b, d, pos); ok {
			out = append(out, n)
		}
	}

	return out
}

// Ray yields the cells reached by stepping from start in direction d,
// one at a time, until the walk leaves b. start itself is not yielded.
func Ray(b Bounds, d Direction, start Coordinate) iter.Seq[Neighbor] {
	return func(yield func(Neighbor) bool) {
		n, ok := NeighborInDirection(b, d, start)
		for ok {
			if !yield(n) {
				return
			}
			n, ok = n.Step(b)
		}
	}
}

// CompareNeighbors orders neighbors by direction, then by position.
// Use it with slices.SortFunc to compare neighbor sets regardless of order.
func CompareNeighbors(a, b Neighbor) int {
	if c := cmp.Compare(a.Direction, b.Direction); c != 0 {
		return c
	}

	return Compare(a.Position, b.Position)
}
