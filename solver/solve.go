package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Solve finds the shortest path between the two exits of g, taking the
// first in row-major order as the source.
//
//  1. FindExits; fewer than two → MissingExits, more than two →
//     ExtraExits, no flood fill in either case.
//  2. Either exit encircled → EncircledExit.
//  3. Normalize a working copy with the first exit as source.
//  4. LabelDistances toward the second exit; unreached → Unreachable.
//  5. ReconstructPath from the second exit back to the first.
//
// g is never modified. The only errors are option errors and
// ErrCorruptLabels; every unsolvable maze comes back as a Result.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	exits := grid.FindExits(g)
	if len(exits) != 2 {
		if _, err := buildOptions(opts); err != nil {
			return nil, err
		}
		if len(exits) < 2 {
			return &Result{Status: MissingExits}, nil
		}
		return &Result{Status: ExtraExits}, nil
	}
	return SolveBetween(g, exits[0], exits[1], opts...)
}

// SolveBetween runs steps 2–5 of Solve for an explicit source and target.
// source == target yields the single-cell path of length 0.
// Returns ErrOutOfBounds if either coordinate is off the grid.
func SolveBetween(g *grid.Grid, source, target grid.Coord, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	for _, c := range []grid.Coord{source, target} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
	}

	res := &Result{Source: source, Target: target}
	if grid.IsEncircled(g, source) || grid.IsEncircled(g, target) {
		res.Status = EncircledExit
		return res, nil
	}

	res.Labels = Normalize(g, source)
	reached, err := LabelDistances(res.Labels, target,
		WithStrategy(o.Strategy),
		WithOnLayer(o.OnLayer),
		WithLogger(o.Logger),
	)
	if err != nil {
		return nil, err
	}
	if !reached {
		res.Status = Unreachable
		return res, nil
	}

	res.Path, err = ReconstructPath(res.Labels, target)
	if err != nil {
		return nil, err
	}
	res.Status = Solved
	return res, nil
}
