// Package lvmaze generates and solves grid mazes.
//
// What is lvmaze?
//
//	A small, single-threaded library split into three packages:
//		• grid      – the cell matrix, exits, encirclement, path overlay
//		• generator – binary-tree carving of perfect mazes + verification
//		• solver    – distance-label flood fill and path reconstruction
//
// Pipeline:
//
//	generator.BinaryTree → grid.FindExits → grid.IsEncircled
//	  → solver.Normalize → solver.LabelDistances → solver.ReconstructPath
//
// solver.Solve runs the whole solving half in one call. Unsolvable mazes
// come back as a Result with a Status, never as an error.
//
// Quick ASCII example (15×15 would not fit here):
//
//	#####X#
//	#     #
//	# ### #
//	#   # #
//	#X#####
//
// The cmd/maze command generates, verifies, solves and prints mazes.
//
//	go run github.com/katalvlaran/lvmaze/cmd/maze -rows 21 -cols 41 -strategy queue
package lvmaze
