package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/reach"
)

// buildDiamond wires the two-braid fixture used across the pipeline:
// two length-4 routes A→E share the middle vertex D and cross there.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "B"}, {"D", "C"},
		{"B", "E"}, {"C", "E"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func TestComputeDiamondLevels(t *testing.T) {
	g := buildDiamond(t)

	res, err := reach.Compute(g, "A", "E", reach.WithMaxDepth(4))
	require.NoError(t, err)
	require.False(t, res.Empty())

	assert.Equal(t, []string{"A"}, res.Forward[0].Names())
	assert.Equal(t, []string{"B", "C"}, res.Forward[1].Names())
	assert.Equal(t, []string{"D", "E"}, res.Forward[2].Names())
	assert.Equal(t, []string{"B", "C"}, res.Forward[3].Names())
	assert.Equal(t, []string{"D", "E"}, res.Forward[4].Names())

	assert.Equal(t, []string{"E"}, res.Backward[0].Names())
	assert.Equal(t, []string{"B", "C"}, res.Backward[1].Names())
	assert.Equal(t, []string{"A", "D"}, res.Backward[2].Names())
	assert.Equal(t, []string{"B", "C"}, res.Backward[3].Names())
	assert.Equal(t, []string{"A", "D"}, res.Backward[4].Names())
}

func TestComputeHonorsDepthHorizon(t *testing.T) {
	g := buildDiamond(t)

	res, err := reach.Compute(g, "A", "E", reach.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, res.Empty())

	assert.Equal(t, 2, res.ForwardDepth())
	assert.Equal(t, 2, res.BackwardDepth())
	assert.Nil(t, res.Forward[3])
	assert.Nil(t, res.Backward[3])
}

func TestComputeStopsWhenFrontierDies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	res, err := reach.Compute(g, "A", "C")
	require.NoError(t, err)
	require.False(t, res.Empty())

	// C has no out-arcs and A has no in-arcs: both sweeps die at depth 2
	// well before the DefaultMaxDepth horizon.
	assert.Equal(t, 2, res.ForwardDepth())
	assert.Equal(t, 2, res.BackwardDepth())
	assert.Equal(t, []string{"C"}, res.Forward[2].Names())
	assert.Equal(t, []string{"A"}, res.Backward[2].Names())
}

func TestComputeUnreachablePairIsEmpty(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("C", "D"))

	res, err := reach.Compute(g, "A", "D")
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Forward)
	assert.Empty(t, res.Backward)
}

func TestComputeSignedParities(t *testing.T) {
	g := core.NewSignedGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C", core.WithSign(core.Negative)))
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("C", "D"))

	res, err := reach.Compute(g, "A", "D", reach.WithMaxDepth(2))
	require.NoError(t, err)
	require.False(t, res.Empty())

	assert.True(t, res.Forward[1].Has("B", core.Positive))
	assert.True(t, res.Forward[1].Has("C", core.Negative))
	assert.False(t, res.Forward[1].Has("C", core.Positive))

	// D is reached both through the all-positive route and through the
	// route crossing one Negative arc; both parities must be recorded.
	assert.True(t, res.Forward[2].Has("D", core.Positive))
	assert.True(t, res.Forward[2].Has("D", core.Negative))

	// The backward sweep accumulates the same arc signs relative to the
	// target, so A shows up at both parities as well.
	assert.True(t, res.Backward[2].Has("A", core.Positive))
	assert.True(t, res.Backward[2].Has("A", core.Negative))
}

func TestComputeSelfPair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X"))

	res, err := reach.Compute(g, "X", "X")
	require.NoError(t, err)
	require.False(t, res.Empty())
	assert.Equal(t, 0, res.ForwardDepth())
	assert.True(t, res.Forward[0].Has("X", core.Positive))
	assert.True(t, res.Backward[0].Has("X", core.Positive))
}

func TestComputeValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	_, err := reach.Compute(nil, "A", "B")
	assert.ErrorIs(t, err, reach.ErrGraphNil)

	_, err = reach.Compute(g, "Z", "B")
	assert.ErrorIs(t, err, reach.ErrSourceNotFound)

	_, err = reach.Compute(g, "A", "Z")
	assert.ErrorIs(t, err, reach.ErrTargetNotFound)

	_, err = reach.Compute(g, "A", "B", reach.WithMaxDepth(0))
	assert.ErrorIs(t, err, reach.ErrOptionViolation)

	_, err = reach.Compute(g, "A", "B", reach.WithMaxDepth(-3))
	assert.ErrorIs(t, err, reach.ErrOptionViolation)
}

func TestComputeOnLevelHook(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	type event struct {
		dir   reach.Direction
		depth int
		size  int
	}
	var events []event
	_, err := reach.Compute(g, "A", "C", reach.WithOnLevel(func(dir reach.Direction, depth, size int) {
		events = append(events, event{dir, depth, size})
	}))
	require.NoError(t, err)

	assert.Equal(t, []event{
		{reach.Forward, 1, 1},
		{reach.Forward, 2, 1},
		{reach.Backward, 1, 1},
		{reach.Backward, 2, 1},
	}, events)
}

func TestSetHelpers(t *testing.T) {
	s := reach.Set{
		reach.Node{Name: "B", Parity: core.Positive}: {},
		reach.Node{Name: "A", Parity: core.Negative}: {},
		reach.Node{Name: "A", Parity: core.Positive}: {},
	}

	assert.Equal(t, []string{"A", "B"}, s.Names())
	assert.True(t, s.HasName("A"))
	assert.False(t, s.HasName("C"))
	assert.False(t, s.Has("B", core.Negative))
}
