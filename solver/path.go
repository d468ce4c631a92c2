package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ReconstructPath walks the labels of a flooded grid from target back to
// the label-1 source. At each step it moves to the first neighbour, in
// the order down, up, right, left, whose label is one less.
//
// The path is returned target→source and has label(target) cells, i.e.
// label(target)-1 steps. A target without a positive label, or a step with
// no predecessor, is ErrCorruptLabels: LabelDistances already decided
// reachability, so either case means the labels are inconsistent.
// Complexity: O(label(target)).
func ReconstructPath(work *grid.Grid, target grid.Coord) ([]grid.Coord, error) {
	if !work.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrOutOfBounds, target)
	}
	v := work.At(target)
	if !v.Labelled() {
		return nil, fmt.Errorf("%w: target %v holds %s", ErrCorruptLabels, target, v)
	}

	path := make([]grid.Coord, 0, v.Dist)
	path = append(path, target)
	at := target
	for cur := v.Dist; cur > 1; cur-- {
		next, ok := predecessor(work, at, cur-1)
		if !ok {
			return nil, fmt.Errorf("%w: no neighbour of %v labelled %d", ErrCorruptLabels, at, cur-1)
		}
		at = next
		path = append(path, at)
	}
	return path, nil
}

func predecessor(work *grid.Grid, at grid.Coord, want int) (grid.Coord, bool) {
	for _, n := range work.Neighbors(at) {
		if work.At(n) == grid.Label(want) {
			return n, true
		}
	}
	return grid.Coord{}, false
}
