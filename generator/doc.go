// Package generator carves perfect mazes on a rectangular grid with the
// binary-tree algorithm and verifies the result.
//
// What
//
//   - BinaryTree lays out rooms at every odd/odd cell, then opens one wall
//     per room toward the room above or to the right, chosen at random with
//     a fixed fallback when the choice leaves the grid.
//   - Two boundary exits are placed: at random (default), at the fixed
//     cells (0, cols-2) and (rows-1, 1), or at caller-forced coordinates.
//   - Verify checks the room graph is a spanning tree using a disjoint-set
//     forest.
//
// Determinism
//
//	All randomness comes from Options.Rand. WithSeed(n) replays the same
//	maze: every room draws exactly once, in row-major order, and exit
//	placement draws afterwards.
//
// Quirk
//
//	Random exits are sampled independently, so on small grids they may
//	coincide or touch. This is accepted; the solver reports such mazes as
//	trivial or unsolvable.
//
// Options
//
//   - DefaultOptions(): time-seeded Rand, random exits, discard logger.
//   - WithRand(r), WithSeed(n): randomness.
//   - WithRandomExits(bool), WithExits(a, b): exit placement.
//   - WithLogger(l): debug summary per run.
//
// Errors
//
//   - grid.ErrDimensions     if rows or cols is below 1.
//   - ErrOptionViolation     for invalid options.
//   - ErrExitOutOfBounds     when an exit does not fit the grid.
//   - ErrCycle, ErrDisconnected from Verify.
package generator
