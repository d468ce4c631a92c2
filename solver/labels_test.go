package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solver"
)

func mustParse(t testing.TB, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	require.NoError(t, err)
	return g
}

type layerEvent struct{ k, labelled int }

// TestNormalize checks the working-copy contract.
func TestNormalize(t *testing.T) {
	g := mustParse(t,
		"#X#",
		"# #",
		"#X#",
	)
	work := solver.Normalize(g, grid.Coord{Row: 0, Col: 1})

	assert.Equal(t, []string{"#1#", "#0#", "#0#"}, work.Lines())
	assert.Equal(t, grid.Wall, work.At(grid.Coord{Row: 0, Col: 0}).Kind)
	assert.Equal(t, []string{"#X#", "# #", "#X#"}, g.Lines(), "input mutated")
}

// TestLabelDistances_Corridor floods a straight corridor.
//
//	#X###
//	#   #
//	###X#
func TestLabelDistances_Corridor(t *testing.T) {
	g := mustParse(t, "#X###", "#   #", "###X#")
	for _, s := range []solver.Strategy{solver.Layered, solver.Queue} {
		t.Run(s.String(), func(t *testing.T) {
			work := solver.Normalize(g, grid.Coord{Row: 0, Col: 1})
			var events []layerEvent
			ok, err := solver.LabelDistances(work, grid.Coord{Row: 2, Col: 3},
				solver.WithStrategy(s),
				solver.WithOnLayer(func(k, n int) { events = append(events, layerEvent{k, n}) }),
			)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, []string{"#1###", "#234#", "###5#"}, work.Lines())
			assert.Equal(t, []layerEvent{{1, 1}, {2, 1}, {3, 1}, {4, 1}}, events)
		})
	}
}

// TestLabelDistances_StopsAtTargetLayer verifies the fill stops once the
// target's layer is complete, leaving farther cells at 0.
//
//	X     #
//	# ### #
//	X     #
func TestLabelDistances_StopsAtTargetLayer(t *testing.T) {
	g := mustParse(t, "X     #", "# ### #", "X     #")
	for _, s := range []solver.Strategy{solver.Layered, solver.Queue} {
		t.Run(s.String(), func(t *testing.T) {
			work := solver.Normalize(g, grid.Coord{Row: 0, Col: 0})
			ok, err := solver.LabelDistances(work, grid.Coord{Row: 2, Col: 0}, solver.WithStrategy(s))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, grid.Label(5), work.At(grid.Coord{Row: 2, Col: 0}))
			assert.Equal(t, []string{"123450#", "#3###0#", "545000#"}, work.Lines())
		})
	}
}

// TestLabelDistances_Unreachable hits the fixed point.
func TestLabelDistances_Unreachable(t *testing.T) {
	g := mustParse(t, "X ###", "#####", "### X")
	for _, s := range []solver.Strategy{solver.Layered, solver.Queue} {
		t.Run(s.String(), func(t *testing.T) {
			work := solver.Normalize(g, grid.Coord{Row: 0, Col: 0})
			var events []layerEvent
			ok, err := solver.LabelDistances(work, grid.Coord{Row: 2, Col: 4},
				solver.WithStrategy(s),
				solver.WithOnLayer(func(k, n int) { events = append(events, layerEvent{k, n}) }),
			)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, []string{"12###", "#####", "###00"}, work.Lines())
			assert.Equal(t, []layerEvent{{1, 1}, {2, 0}}, events)
		})
	}
}

// TestLabelDistances_Errors covers input validation.
func TestLabelDistances_Errors(t *testing.T) {
	g := mustParse(t, "X X")

	_, err := solver.LabelDistances(g, grid.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, solver.ErrNotNormalized)

	work := solver.Normalize(g, grid.Coord{Row: 0, Col: 0})
	_, err = solver.LabelDistances(work, grid.Coord{Row: 1, Col: 0})
	assert.ErrorIs(t, err, solver.ErrOutOfBounds)

	_, err = solver.LabelDistances(work, grid.Coord{Row: 0, Col: 2}, solver.WithStrategy(solver.Strategy(7)))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}

// TestStrategies_IdenticalLabels floods many generated mazes with both
// strategies and requires identical label grids and layer events.
func TestStrategies_IdenticalLabels(t *testing.T) {
	sizes := [][2]int{{5, 5}, {9, 13}, {15, 15}, {8, 6}, {21, 21}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 25; seed++ {
			g, err := generator.BinaryTree(sz[0], sz[1], generator.WithSeed(seed))
			require.NoError(t, err)
			exits := grid.FindExits(g)
			if len(exits) < 2 {
				continue
			}

			var evL, evQ []layerEvent
			layered := solver.Normalize(g, exits[0])
			okL, err := solver.LabelDistances(layered, exits[1],
				solver.WithOnLayer(func(k, n int) { evL = append(evL, layerEvent{k, n}) }))
			require.NoError(t, err)

			queued := solver.Normalize(g, exits[0])
			okQ, err := solver.LabelDistances(queued, exits[1],
				solver.WithStrategy(solver.Queue),
				solver.WithOnLayer(func(k, n int) { evQ = append(evQ, layerEvent{k, n}) }))
			require.NoError(t, err)

			require.Equal(t, okL, okQ, "size %v seed %d", sz, seed)
			require.True(t, layered.Equal(queued), "size %v seed %d:\n%s\n---\n%s", sz, seed, layered, queued)
			require.Equal(t, evL, evQ, "size %v seed %d", sz, seed)
		}
	}
}

// TestLabelDistances_Idempotent reruns the fill on fresh copies and checks
// labels of reachable cells never change.
func TestLabelDistances_Idempotent(t *testing.T) {
	g, err := generator.BinaryTree(15, 15, generator.WithSeed(11), generator.WithRandomExits(false))
	require.NoError(t, err)
	exits := grid.FindExits(g)
	require.Len(t, exits, 2)

	first := solver.Normalize(g, exits[0])
	_, err = solver.LabelDistances(first, exits[1])
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again := solver.Normalize(g, exits[0])
		_, err = solver.LabelDistances(again, exits[1], solver.WithStrategy(solver.Strategy(i%2)))
		require.NoError(t, err)
		require.True(t, first.Equal(again))
	}
}

// TestParseStrategy round-trips the flag spellings.
func TestParseStrategy(t *testing.T) {
	for _, s := range []solver.Strategy{solver.Layered, solver.Queue} {
		got, err := solver.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := solver.ParseStrategy("dfs")
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}
