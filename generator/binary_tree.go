package generator

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
)

// direction is the carve target of a room: the room above or to the right.
type direction int

const (
	up direction = iota
	right
)

// BinaryTree builds a rows×cols maze:
//
//  1. Start from an all-wall grid.
//  2. Turn every cell at odd row and odd column into a Passage ("room").
//  3. For each room in row-major order, draw up or right at random and
//     open the wall toward that room; fall back to the other direction
//     when the drawn one leaves the grid, and do nothing when both do.
//  4. Mark two boundary cells as Exit (see Options).
//
// Every room except the top-right one attaches to exactly one earlier
// room, so the rooms form a spanning tree: a perfect maze.
//
// Returns grid.ErrDimensions for non-positive sizes, ErrOptionViolation
// for bad options and ErrExitOutOfBounds when the exits do not fit.
// Complexity: O(rows×cols) time and memory.
func BinaryTree(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	rooms := layRooms(g)
	carves := 0
	for _, room := range rooms {
		if carve(g, room, o.Rand) {
			carves++
		}
	}

	exits, err := placeExits(g, o)
	if err != nil {
		return nil, err
	}
	g.Set(exits[0], grid.ExitCell())
	g.Set(exits[1], grid.ExitCell())

	o.Logger.WithFields(logrus.Fields{
		"rows":   rows,
		"cols":   cols,
		"rooms":  len(rooms),
		"carves": carves,
		"exits":  fmt.Sprintf("%v %v", exits[0], exits[1]),
	}).Debug("maze generated")

	return g, nil
}

// layRooms opens every odd/odd cell and returns them in row-major order.
func layRooms(g *grid.Grid) []grid.Coord {
	rooms := make([]grid.Coord, 0, (g.Rows/2)*(g.Cols/2))
	for r := 1; r < g.Rows; r += 2 {
		for c := 1; c < g.Cols; c += 2 {
			room := grid.Coord{Row: r, Col: c}
			g.Set(room, grid.PassageCell())
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// carve removes one wall next to room. The random draw happens for every
// room, including the one that ends up carving nothing, so a fixed seed
// always replays the same sequence.
func carve(g *grid.Grid, room grid.Coord, rnd *rand.Rand) bool {
	canUp := room.Row-2 >= 0
	canRight := room.Col+2 < g.Cols

	dir := direction(rnd.Intn(2))
	if dir == up && !canUp {
		dir = right
	} else if dir == right && !canRight {
		dir = up
	}

	switch {
	case dir == up && canUp:
		g.Set(grid.Coord{Row: room.Row - 1, Col: room.Col}, grid.PassageCell())
	case dir == right && canRight:
		g.Set(grid.Coord{Row: room.Row, Col: room.Col + 1}, grid.PassageCell())
	default:
		return false
	}
	return true
}

// placeExits picks the two exit coordinates from o.
func placeExits(g *grid.Grid, o Options) ([2]grid.Coord, error) {
	var exits [2]grid.Coord
	switch {
	case o.Exits != nil:
		exits = *o.Exits
	case o.RandomExits:
		exits = randomExits(g, o.Rand)
	default:
		exits = [2]grid.Coord{
			{Row: 0, Col: g.Cols - 2},
			{Row: g.Rows - 1, Col: 1},
		}
	}
	for _, e := range exits {
		if !g.InBounds(e) {
			return exits, fmt.Errorf("%w: %v on %dx%d grid", ErrExitOutOfBounds, e, g.Rows, g.Cols)
		}
	}
	return exits, nil
}

// randomExits samples two boundary cells independently. Both rows are
// drawn first; a row on the top or bottom edge takes any column, any other
// row takes the first or last column. The two exits may coincide or touch.
func randomExits(g *grid.Grid, rnd *rand.Rand) [2]grid.Coord {
	rowIn, rowOut := rnd.Intn(g.Rows), rnd.Intn(g.Rows)
	colIn := boundaryCol(g, rowIn, rnd)
	colOut := boundaryCol(g, rowOut, rnd)
	return [2]grid.Coord{
		{Row: rowIn, Col: colIn},
		{Row: rowOut, Col: colOut},
	}
}

func boundaryCol(g *grid.Grid, row int, rnd *rand.Rand) int {
	if row == 0 || row == g.Rows-1 {
		return rnd.Intn(g.Cols)
	}
	if rnd.Intn(2) == 0 {
		return 0
	}
	return g.Cols - 1
}
