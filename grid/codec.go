package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Glyphs used by Parse and String.
const (
	GlyphWall    = '#'
	GlyphPassage = ' '
	GlyphExit    = 'X'
)

// Parse decodes a grid from one string per row.
//
//	'#' or '■' → Wall
//	' ' or '.' → Passage
//	'X'        → Exit
//
// Distance labels have no textual input form.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrGlyph wrapped with the
// offending position.
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	cols := utf8.RuneCountInString(rows[0])
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		if utf8.RuneCountInString(line) != cols {
			return nil, ErrNonRectangular
		}
		c := 0
		for _, ch := range line {
			var v Cell
			switch ch {
			case GlyphWall, '■':
				v = WallCell()
			case GlyphPassage, '.':
				v = PassageCell()
			case GlyphExit:
				v = ExitCell()
			default:
				return nil, fmt.Errorf("%w %q at (%d,%d)", ErrGlyph, ch, r, c)
			}
			g.Set(Coord{Row: r, Col: c}, v)
			c++
		}
	}
	return g, nil
}

// String renders g one row per line using the Parse glyphs.
// Distance cells print the last digit of their label.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			v := g.cells[r*g.Cols+c]
			switch v.Kind {
			case Wall:
				sb.WriteRune(GlyphWall)
			case Passage:
				sb.WriteRune(GlyphPassage)
			case Exit:
				sb.WriteRune(GlyphExit)
			case Distance:
				sb.WriteByte(byte('0' + v.Dist%10))
			}
		}
		if r < g.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Lines returns String split into rows, the inverse of Parse for
// grids without Distance cells.
func (g *Grid) Lines() []string {
	return strings.Split(g.String(), "\n")
}
