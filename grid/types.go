// Package grid defines the cell model, coordinates and sentinel errors
// for the grid subpackage of github.com/katalvlaran/lvmaze.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and decoding.
var (
	// ErrDimensions indicates rows or cols below 1.
	ErrDimensions = errors.New("grid: rows and cols must be positive")
	// ErrEmptyGrid indicates textual input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrGlyph indicates a character the text codec does not know.
	ErrGlyph = errors.New("grid: unknown glyph")
)

// Kind selects which variant a Cell holds.
type Kind uint8

const (
	// Wall blocks movement. It is the zero Kind, so a zero Cell is a wall.
	Wall Kind = iota
	// Passage is an open cell.
	Passage
	// Exit is an open boundary cell marking an entrance or exit.
	Exit
	// Distance is a flood-fill label; see Cell.Dist.
	Distance
)

// String returns the lower-case name of k.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Exit:
		return "exit"
	case Distance:
		return "distance"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Cell is a tagged variant: Wall | Passage | Exit | Distance(n).
// Dist is meaningful only when Kind == Distance.
type Cell struct {
	Kind Kind
	Dist int
}

// WallCell returns a Wall cell.
func WallCell() Cell { return Cell{Kind: Wall} }

// PassageCell returns a Passage cell.
func PassageCell() Cell { return Cell{Kind: Passage} }

// ExitCell returns an Exit cell.
func ExitCell() Cell { return Cell{Kind: Exit} }

// Label returns a Distance cell carrying n.
// Panics if n is negative.
func Label(n int) Cell {
	if n < 0 {
		panic(fmt.Sprintf("grid: negative distance label %d", n))
	}
	return Cell{Kind: Distance, Dist: n}
}

// IsWall reports whether c is a Wall.
func (c Cell) IsWall() bool { return c.Kind == Wall }

// IsOpen reports whether c is a Passage or an Exit.
func (c Cell) IsOpen() bool { return c.Kind == Passage || c.Kind == Exit }

// Labelled reports whether c is a Distance cell with a positive label.
func (c Cell) Labelled() bool { return c.Kind == Distance && c.Dist > 0 }

// String renders c for debugging.
func (c Cell) String() string {
	if c.Kind == Distance {
		return fmt.Sprintf("distance(%d)", c.Dist)
	}
	return c.Kind.String()
}

// Coord addresses a cell by row and column, both 0-indexed.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Coord) Adjacent(o Coord) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	return dr*dr+dc*dc == 1
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Offsets4 lists the orthogonal neighbour offsets in the fixed order
// down, up, right, left. Every neighbour scan in the module uses this order,
// which is what makes path reconstruction deterministic.
var Offsets4 = [4]Coord{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// Grid is a fixed-size, row-major matrix of cells.
// Rows and Cols never change after construction.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}
