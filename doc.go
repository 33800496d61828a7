// Package lvgrid is a small toolkit for rectangular cell grids: the kind of
// field found in puzzles, tile maps and cellular simulations.
//
// 🚀 What is in the box?
//
//	• grid/    : Grid[T], Coordinate, Direction, neighbor queries, rendering
//	• gridio/  : load line-based text into Grid[rune] or Grid[int]
//	• config/  : input selection and YAML/env settings for the CLI
//	• logging/ : leveled logfmt logger and the input → verbosity table
//	• cmd/gridview : print a grid, list neighbors, trace rays
//
// ✨ Guarantees
//
//   - Rectangular by construction: ragged rows are rejected, never padded.
//   - No wrap-around: stepping Up from row 0 or Left from column 0 yields
//     "no neighbor", not a huge index.
//   - Off-grid is not an error: queries answer with (value, ok).
//
// Quick ASCII example, neighbors of X with diagonals:
//
//	↖ ↑ ↗
//	← X →
//	↙ ↓ ↘
//
// Traversals such as BFS or flood fill are deliberately left to callers;
// grid only answers "what is next to this cell".
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
