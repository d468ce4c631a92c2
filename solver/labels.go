package solver

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
)

// Normalize returns a working copy of g for the flood fill: every non-wall
// cell becomes Label(0), then source becomes Label(1). Walls are kept and
// never labelled. g is not modified. source must be in bounds.
// Complexity: O(rows×cols).
func Normalize(g *grid.Grid, source grid.Coord) *grid.Grid {
	work := g.Clone()
	work.Each(func(c grid.Coord, v grid.Cell) {
		if !v.IsWall() {
			work.Set(c, grid.Label(0))
		}
	})
	work.Set(source, grid.Label(1))
	return work
}

// LabelDistances floods the normalized grid work outward from its label-1
// cell, writing label k+1 into every unvisited (label 0) neighbour of a
// label-k cell. It stops as soon as target holds a positive label, or when
// a whole layer adds nothing. The return value reports whether target was
// reached; an unreached target is not an error.
//
// Both strategies stop after completing the layer that labels target, so
// they leave identical grids.
//
// Returns ErrOutOfBounds for an off-grid target, ErrNotNormalized when
// work still holds Passage or Exit cells, ErrOptionViolation for bad
// options.
func LabelDistances(work *grid.Grid, target grid.Coord, opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	if !work.InBounds(target) {
		return false, fmt.Errorf("%w: target %v", ErrOutOfBounds, target)
	}
	if err := checkNormalized(work); err != nil {
		return false, err
	}
	if work.At(target).Labelled() {
		return true, nil
	}

	var reached bool
	var layers int
	switch o.Strategy {
	case Queue:
		reached, layers = fillQueue(work, target, o.OnLayer)
	default:
		reached, layers = fillLayered(work, target, o.OnLayer)
	}

	o.Logger.WithFields(logrus.Fields{
		"strategy": o.Strategy,
		"target":   target,
		"layers":   layers,
		"reached":  reached,
	}).Debug("flood fill finished")
	return reached, nil
}

// checkNormalized rejects grids that still carry symbolic open cells.
func checkNormalized(work *grid.Grid) error {
	var bad *grid.Coord
	work.Each(func(c grid.Coord, v grid.Cell) {
		if bad == nil && v.IsOpen() {
			bad = &c
		}
	})
	if bad != nil {
		return fmt.Errorf("%w: %s cell at %v", ErrNotNormalized, work.At(*bad).Kind, *bad)
	}
	return nil
}

// fillLayered is the reference fill: pass k scans the whole grid for
// label-k cells. Cells labelled during pass k carry k+1, so relabelling in
// place gives the same result as writing into a fresh copy.
func fillLayered(work *grid.Grid, target grid.Coord, onLayer func(k, labelled int)) (bool, int) {
	for k := 1; ; k++ {
		labelled := 0
		for r := 0; r < work.Rows; r++ {
			for c := 0; c < work.Cols; c++ {
				at := grid.Coord{Row: r, Col: c}
				if v := work.At(at); v.Kind != grid.Distance || v.Dist != k {
					continue
				}
				labelled += expand(work, at, k)
			}
		}
		onLayer(k, labelled)
		if work.At(target).Labelled() {
			return true, k
		}
		if labelled == 0 {
			return false, k
		}
	}
}

// fillQueue is the breadth-first equivalent. Cells leave the deque in
// non-decreasing label order, so a change of label marks a finished layer.
// Once target is labelled the loop stops at the next layer boundary.
func fillQueue(work *grid.Grid, target grid.Coord, onLayer func(k, labelled int)) (bool, int) {
	var q deque.Deque[grid.Coord]
	work.Each(func(c grid.Coord, v grid.Cell) {
		if v.Kind == grid.Distance && v.Dist == 1 {
			q.PushBack(c)
		}
	})

	layer, labelled := 1, 0
	reached := false
	for q.Len() > 0 {
		at := q.PopFront()
		k := work.At(at).Dist
		if k != layer {
			onLayer(layer, labelled)
			if reached {
				return true, layer
			}
			layer, labelled = k, 0
		}
		for _, n := range work.Neighbors(at) {
			if work.At(n) != grid.Label(0) {
				continue
			}
			work.Set(n, grid.Label(k+1))
			q.PushBack(n)
			labelled++
			if n == target {
				reached = true
			}
		}
	}
	onLayer(layer, labelled)
	return reached, layer
}

// expand labels the unvisited neighbours of at with k+1 and returns how
// many it labelled.
func expand(work *grid.Grid, at grid.Coord, k int) int {
	n := 0
	for _, nb := range work.Neighbors(at) {
		if work.At(nb) == grid.Label(0) {
			work.Set(nb, grid.Label(k+1))
			n++
		}
	}
	return n
}
