package generator

import (
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvmaze/grid"
)

// links are the two wall directions checked from each room; walking rooms
// in row-major order and looking only right and down sees every
// room-to-room wall exactly once.
var links = [2]grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}

// Verify checks that the rooms of g (open cells at odd row and odd column)
// form a spanning tree through their open connecting walls.
//
// Each open wall between two rooms is a union in a disjoint-set forest.
// A union of two rooms already in the same set is a cycle (ErrCycle); more
// than one set at the end means some room is unreachable (ErrDisconnected).
// Stats is filled in either way.
//
// For a perfect maze Carves == Rooms-1.
// Complexity: O(rows×cols·α(rows×cols)).
func Verify(g *grid.Grid) (Stats, error) {
	var st Stats
	sets := make(map[grid.Coord]*disjoint.Element)
	var rooms []grid.Coord
	for r := 1; r < g.Rows; r += 2 {
		for c := 1; c < g.Cols; c += 2 {
			room := grid.Coord{Row: r, Col: c}
			if g.At(room).IsOpen() {
				sets[room] = disjoint.NewElement()
				rooms = append(rooms, room)
			}
		}
	}
	st.Rooms = len(rooms)
	components := st.Rooms

	for _, room := range rooms {
		for _, d := range links {
			wall := room.Add(d)
			other := wall.Add(d)
			to, ok := sets[other]
			if !ok || !g.At(wall).IsOpen() {
				continue
			}
			st.Carves++
			from := sets[room]
			if from.Find() == to.Find() {
				return st, fmt.Errorf("%w: wall %v closes a loop", ErrCycle, wall)
			}
			disjoint.Union(from, to)
			components--
		}
	}

	if components > 1 {
		return st, fmt.Errorf("%w: %d components", ErrDisconnected, components)
	}
	return st, nil
}
