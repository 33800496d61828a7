// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"fmt"
	"io"
)

// Render writes g to w one row per line. Each cell is passed through
// display and printed with fmt's default format, with no separator
// between cells; every row, including the last, ends in '\n'.
//
// Output is buffered and flushed before Render returns. The only errors
// are those reported by w.
// Complexity: O(W×H).
func Render[T, O any](w io.Writer, g *Grid[T], display func(T) O) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		for _, v := range row {
			if _, err := fmt.Fprint(bw, display(v)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// RenderTrace is Render with a path drawn over the grid: every cell
// visited by path shows the glyph of the direction that reached it.
// When a cell appears more than once the last visit wins. Path entries
// outside g are ignored.
func RenderTrace[T, O any](w io.Writer, g *Grid[T], display func(T) O, path []Neighbor) error {
	glyphs := make(map[Coordinate]rune, len(path))
	for _, n := range path {
		if g.InBounds(n.Position) {
			glyphs[n.Position] = n.Direction.Glyph()
		}
	}

	bw := bufio.NewWriter(w)
	for y, row := range g.Rows() {
		for x, v := range row {
			var err error
			if r, ok := glyphs[Coordinate{X: x, Y: y}]; ok {
				_, err = bw.WriteRune(r)
			} else {
				_, err = fmt.Fprint(bw, display(v))
			}
			if err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
