package pathsgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// buildForkedPair wires S→{B1,B2}→T with weights 3 and 1 on the fork.
func buildForkedPair(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdge("S", "B1", core.WithWeight(3)))
	require.NoError(t, g.AddEdge("S", "B2", core.WithWeight(1)))
	require.NoError(t, g.AddEdge("B1", "T"))
	require.NoError(t, g.AddEdge("B2", "T"))

	return g
}

func TestWeightSum(t *testing.T) {
	braid, err := pathsgraph.FromGraph(buildBraid(t), "A", "E", 4)
	require.NoError(t, err)
	assert.InDelta(t, float64(braid.CountPaths()), braid.WeightSum(), 1e-12,
		"unweighted mass equals the walk count")

	fork, err := pathsgraph.FromGraph(buildForkedPair(t), "S", "T", 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, fork.WeightSum(), 1e-12)
}

func TestSamplePathsSeedPolicy(t *testing.T) {
	pg, err := pathsgraph.FromGraph(buildBraid(t), "A", "E", 4)
	require.NoError(t, err)

	// Two explicit rngs with one seed agree; nil falls back to the
	// fixed default seed, so two nil runs agree with each other too.
	a := pg.SamplePaths(20, pathsgraph.NewRand(42))
	b := pg.SamplePaths(20, pathsgraph.NewRand(42))
	assert.Equal(t, a, b)
	assert.Equal(t, pg.SamplePaths(20, nil), pg.SamplePaths(20, nil))

	// Every sampled walk is a real one.
	valid := map[string]bool{}
	for _, p := range pg.EnumeratePaths() {
		valid[pathKey(p)] = true
	}
	for _, p := range a {
		assert.True(t, valid[pathKey(p)], "sampled walk %v not enumerable", p)
	}
}

func TestSamplePathsWeightedRatio(t *testing.T) {
	pg, err := pathsgraph.FromGraph(buildForkedPair(t), "S", "T", 2)
	require.NoError(t, err)

	const n = 2000
	viaB1 := 0
	for _, p := range pg.SamplePaths(n, pathsgraph.NewRand(7)) {
		require.Len(t, p, 3)
		if p[1] == "B1" {
			viaB1++
		}
	}
	assert.InDelta(t, 0.75, float64(viaB1)/n, 0.04, "3:1 fork weights drive a 3:1 draw")
}

func TestSampleSinglePath(t *testing.T) {
	pg, err := pathsgraph.FromGraph(buildForkedPair(t), "S", "T", 2)
	require.NoError(t, err)

	p := pg.SampleSinglePath(pathsgraph.NewRand(1))
	require.Len(t, p, 3)
	assert.Equal(t, "S", p[0])
	assert.Equal(t, "T", p[2])

	empty, err := pathsgraph.FromGraph(buildForkedPair(t), "S", "T", 5)
	require.NoError(t, err)
	assert.Nil(t, empty.SampleSinglePath(nil))
	assert.Empty(t, empty.SamplePaths(3, nil))
	assert.Empty(t, pg.SamplePaths(0, nil))
	assert.Empty(t, pg.SamplePaths(-2, nil))
}

// pathKey flattens a name path for set membership checks.
func pathKey(p []string) string {
	key := ""
	for _, name := range p {
		key += name + "|"
	}

	return key
}
