// Package gridgraph treats a rectangular 2D grid of cells as a graph of
// positions, so puzzles can walk it, scan it in straight lines, or look
// at neighborhoods without re-implementing bounds checks every time.
//
// What:
//
//   - GridGraph[T] wraps a rectangular [][]T grid (runes, bools, ints...).
//   - Neighbor offsets are precomputed for Conn4 or Conn8 connectivity.
//   - Cells are addressed by (x, y) with x the column and y the row, or by a
//     row-major index for compact visited sets.
//   - FromLines and ParseRunes build a rune grid from text input.
//
// Complexity:
//
//   - NewGridGraph / FromLines / ParseRunes: O(W×H), Memory: O(W×H).
//   - InBounds, At, AtOK, Index, Coordinate: O(1).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
