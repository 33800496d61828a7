// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Direction is one of the eight compass moves on a grid.
// The set is closed; values outside Up..LowerRight are invalid.
type Direction uint8

const (
	// Up moves to the previous row.
	Up Direction = iota
	// Down moves to the next row.
	Down
	// Left moves to the previous column.
	Left
	// Right moves to the next column.
	Right
	// UpperLeft moves to the previous row and previous column.
	UpperLeft
	// UpperRight moves to the previous row and next column.
	UpperRight
	// LowerLeft moves to the next row and previous column.
	LowerLeft
	// LowerRight moves to the next row and next column.
	LowerRight
)

// Orthogonal returns Up, Down, Left, Right in that order.
func Orthogonal() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Diagonals returns UpperLeft, UpperRight, LowerLeft, LowerRight in that order.
func Diagonals() []Direction {
	return []Direction{UpperLeft, UpperRight, LowerLeft, LowerRight}
}

// All returns the orthogonal directions followed by the diagonal ones.
func All() []Direction {
	return append(Orthogonal(), Diagonals()...)
}

// Delta returns the row and column change of one step in d.
func (d Direction) Delta() (dy, dx int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpperLeft:
		return -1, -1
	case UpperRight:
		return -1, 1
	case LowerLeft:
		return 1, -1
	case LowerRight:
		return 1, 1
	default:
		panic(fmt.Sprintf("grid: invalid direction %d", uint8(d)))
	}
}

// Glyph returns the arrow used for d in traces.
func (d Direction) Glyph() rune {
	switch d {
	case Up:
		return '↑'
	case Down:
		return '↓'
	case Left:
		return '←'
	case Right:
		return '→'
	case UpperLeft:
		return '↖'
	case UpperRight:
		return '↗'
	case LowerLeft:
		return '↙'
	case LowerRight:
		return '↘'
	default:
		return '?'
	}
}

// String returns the direction's name, e.g. "UpperLeft".
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case UpperLeft:
		return "UpperLeft"
	case UpperRight:
		return "UpperRight"
	case LowerLeft:
		return "LowerLeft"
	case LowerRight:
		return "LowerRight"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// IsValid reports whether d is one of the eight defined directions.
func (d Direction) IsValid() bool {
	return d <= LowerRight
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d >= UpperLeft && d <= LowerRight
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpperLeft:
		return LowerRight
	case UpperRight:
		return LowerLeft
	case LowerLeft:
		return UpperRight
	case LowerRight:
		return UpperLeft
	default:
		return d
	}
}

// ParseDirection accepts a direction name in any letter case ("right",
// "UpperLeft") or its single arrow glyph ("→").
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && size > 1 {
		for _, d := range All() {
			if d.Glyph() == r {
				return d, nil
			}
		}
	}
	for _, d := range All() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
