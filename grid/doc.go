// Package grid models a rectangular maze as a fixed-size matrix of cells.
//
// What:
//
//   - Cell is a tagged variant: Wall | Passage | Exit | Distance(n).
//     Generation only produces the symbolic kinds; solving works on a copy
//     whose open cells are turned into Distance labels.
//   - Coord addresses a cell as (row, col), 0-indexed, row-major.
//   - FindExits collects Exit cells in row-major order.
//   - IsEncircled detects a boundary exit walled in on every side.
//   - OverlayPath marks a path on a display copy of a grid.
//   - Parse / String form a small text codec used by tests and the CLI.
//
// Neighbour order:
//
//	Offsets4 is down, up, right, left. Neighbors, the flood fill and the
//	path reconstructor all use it.
//
// Complexity:
//
//   - New, Clone, FindExits, OverlayPath: O(rows×cols).
//   - At, Set, InBounds, OnBoundary, IsEncircled: O(1).
//
// Errors:
//
//   - ErrDimensions: rows or cols below 1.
//   - ErrEmptyGrid, ErrNonRectangular, ErrGlyph: Parse input problems.
package grid
