package grid

import "github.com/zyedidia/generic/mapset"

// FindExits scans g once in row-major order and returns every coordinate
// holding an Exit cell. The result may have fewer than two entries; solving
// needs exactly two and callers must check.
// Complexity: O(rows×cols).
func FindExits(g *Grid) []Coord {
	var exits []Coord
	g.Each(func(c Coord, v Cell) {
		if v.Kind == Exit {
			exits = append(exits, c)
		}
	})
	return exits
}

// IsEncircled reports whether c is a boundary cell whose in-bounds
// orthogonal neighbours are all walls. Interior coordinates are never
// encircled, whatever surrounds them. A corner has two in-bounds
// neighbours; an edge cell has three.
func IsEncircled(g *Grid, c Coord) bool {
	if !g.OnBoundary(c) {
		return false
	}
	for _, n := range g.Neighbors(c) {
		if !g.At(n).IsWall() {
			return false
		}
	}
	return true
}

// OverlayPath returns a display copy of g with every in-bounds path cell
// marked Exit. g itself is left untouched. A nil or empty path yields a
// plain copy; off-grid and repeated coordinates are skipped.
// Complexity: O(rows×cols) for the copy plus O(len(path)).
func OverlayPath(g *Grid, path []Coord) *Grid {
	out := g.Clone()
	seen := mapset.New[Coord]()
	for _, c := range path {
		if seen.Has(c) || !out.InBounds(c) {
			continue
		}
		seen.Put(c)
		out.Set(c, ExitCell())
	}
	return out
}
