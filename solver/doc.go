// Package solver finds the shortest path between the two exits of a maze
// grid by distance-label flood fill.
//
// What
//
//   - Normalize copies a grid and turns every open cell into label 0, the
//     source into label 1.
//   - LabelDistances floods labels outward layer by layer until the target
//     is labelled or nothing changes.
//   - ReconstructPath walks labels downhill from the target to the source.
//   - Solve / SolveBetween compose the above with exit discovery and the
//     encirclement check.
//
// Outcomes
//
//	An unsolvable maze is not an error. Result.Status says why:
//	MissingExits, ExtraExits, EncircledExit or Unreachable. Errors are reserved for
//	bad input (ErrOutOfBounds, ErrNotNormalized, ErrOptionViolation) and
//	for the invariant violation ErrCorruptLabels.
//
// Strategies
//
//	Layered re-scans the whole grid once per layer, O(rows×cols×diameter).
//	Queue is a deque-backed BFS, O(rows×cols). Both stop at the end of the
//	layer that labels the target and leave identical label grids; OnLayer
//	sees the same (k, labelled) sequence from either.
//
// Usage
//
//	res, err := solver.Solve(g, solver.WithStrategy(solver.Queue))
//	if err != nil {
//		// ErrCorruptLabels or an option error
//	}
//	if res.Ok() {
//		display := grid.OverlayPath(g, res.Path)
//		_ = display
//	}
//
// Path order
//
//	Result.Path runs target→source, as the reconstruction produces it.
//	Result.Forward() returns source→target.
package solver
