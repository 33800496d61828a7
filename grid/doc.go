// SPDX-License-Identifier: MIT

// Package grid models a rectangular field of cells and answers adjacency
// questions about it in up to eight compass directions.
//
// What:
//
//   - Grid[T] owns a rectangular block of cell values stored row-major in a
//     single buffer. Ragged input is rejected at construction.
//   - Coordinate is a plain (X, Y) value; Y is the row, X the column.
//   - Direction is the closed set of four orthogonal and four diagonal moves.
//   - NeighborInDirection, Neighbors and Neighbor.Step compute the cells that
//     exist next to a position, never producing a negative or wrapped index.
//   - Render and RenderTrace write a grid to any io.Writer.
//
// Why:
//
//   - Puzzle and simulation grids need the same boundary logic over and over:
//     top rows have no Up neighbor, left columns have no Left neighbor, and a
//     1×1 grid has no neighbors at all.
//
// Complexity:
//
//   - New: O(W×H) time and memory (one copy into the backing buffer).
//   - Get, Set, At, Put, InBounds: O(1).
//   - NeighborInDirection, Step: O(1). Neighbors: O(d), d = 4 or 8.
//   - Render: O(W×H).
//
// Errors:
//
//   - ErrRaggedRows: rows of differing lengths passed to New.
//   - ErrNegativeDimension: negative width or height passed to Filled.
//   - ErrTooLarge: width×height passed to Filled overflows int.
//   - ErrInvalidCoordinate: ParseCoordinate input is malformed or negative.
//   - ErrUnknownDirection: ParseDirection input names no direction.
//
// Off-grid queries are not errors: Get, NeighborInDirection and Step report
// absence through their boolean result, including for a Direction outside
// Up..LowerRight. Direction.Delta panics on such a value. At and Put panic on an out-of-range
// coordinate and must only be used with positions that were already checked.
//
// Precondition: a Neighbor is only valid for the shape it was computed
// against. Grid never changes shape after New, so this holds for every Grid;
// callers passing their own Bounds must keep them fixed while Neighbors are
// in use.
package grid
