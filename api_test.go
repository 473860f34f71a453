package cfpath_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cfpath"
	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/reach"
)

func mustEdges(t *testing.T, g *core.Graph, pairs [][2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}
}

// buildDiamond wires A→{B,C}→D.
func buildDiamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustEdges(t, g, [][2]string{{"A", "B"}, {"B", "D"}, {"A", "C"}, {"C", "D"}})

	return g
}

func pathKeys(paths [][]string) []string {
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = strings.Join(p, "→")
	}
	sort.Strings(keys)

	return keys
}

func TestExactLengthQueries(t *testing.T) {
	g := buildDiamond(t)

	n, err := cfpath.CountPaths(g, "A", "D", cfpath.WithLength(2))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	paths, err := cfpath.EnumeratePaths(g, "A", "D", cfpath.WithLength(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "D"}, {"A", "C", "D"}}, paths)

	samples, err := cfpath.SamplePaths(g, "A", "D", 10, cfpath.WithLength(2))
	require.NoError(t, err)
	require.Len(t, samples, 10)
	for _, p := range samples {
		assert.Contains(t, []string{"A→B→D", "A→C→D"}, strings.Join(p, "→"))
	}
}

// The depth sweep aggregates every length and orders shortest first.
func TestDepthSweepAggregates(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, [][2]string{{"S", "A"}, {"A", "T"}, {"S", "T"}, {"A", "S"}})

	paths, err := cfpath.EnumeratePaths(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"S", "T"}, {"S", "A", "T"}}, paths)

	n, err := cfpath.CountPaths(g, "S", "T")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// Cycle-free extraction must drop the walk A→B→A→D that the raw
// leveled graphs still carry.
func TestCycleFreeVersusRawWalks(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "D"}, {"A", "D"}})

	cf, err := cfpath.EnumeratePaths(g, "A", "D", cfpath.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A→B→C→D", "A→D"}, pathKeys(cf))

	raw, err := cfpath.EnumeratePaths(g, "A", "D",
		cfpath.WithMaxDepth(3), cfpath.WithCycleFree(false))
	require.NoError(t, err)
	assert.Equal(t, []string{"A→B→A→D", "A→B→C→D", "A→D"}, pathKeys(raw))

	samples, err := cfpath.SamplePaths(g, "A", "D", 50, cfpath.WithMaxDepth(3))
	require.NoError(t, err)
	for _, p := range samples {
		names := map[string]struct{}{}
		for _, name := range p {
			_, dup := names[name]
			require.False(t, dup, "repeated name in %v", p)
			names[name] = struct{}{}
		}
	}
}

func TestUnreachablePairIsEmptyEverywhere(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("Z"))

	samples, err := cfpath.SamplePaths(g, "A", "Z", 5)
	require.NoError(t, err)
	assert.Empty(t, samples)

	paths, err := cfpath.EnumeratePaths(g, "A", "Z")
	require.NoError(t, err)
	assert.Empty(t, paths)

	n, err := cfpath.CountPaths(g, "A", "Z")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLengthZeroBoundary(t *testing.T) {
	g := buildDiamond(t)

	paths, err := cfpath.EnumeratePaths(g, "A", "A", cfpath.WithLength(0))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A"}}, paths)

	n, err := cfpath.CountPaths(g, "A", "D", cfpath.WithLength(0))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSignedTargetParity(t *testing.T) {
	g := core.NewSignedGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C", core.WithSign(core.Negative)))
	require.NoError(t, g.AddEdge("A", "D"))
	require.NoError(t, g.AddEdge("D", "C"))

	neg, err := cfpath.EnumeratePaths(g, "A", "C",
		cfpath.WithLength(2), cfpath.WithTargetParity(core.Negative))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C"}}, neg)

	pos, err := cfpath.EnumeratePaths(g, "A", "C",
		cfpath.WithLength(2), cfpath.WithTargetParity(core.Positive))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "D", "C"}}, pos)
}

// A three-path fixture: one length-1 route and two length-2 routes.
// Uniform mode must spread draws evenly across all three.
func TestUniformAcrossLengths(t *testing.T) {
	g := core.NewGraph()
	mustEdges(t, g, [][2]string{
		{"S", "T"},
		{"S", "A"}, {"A", "T"},
		{"S", "B"}, {"B", "T"},
	})

	const draws = 1500
	samples, err := cfpath.SamplePaths(g, "S", "T", draws,
		cfpath.WithMaxDepth(2), cfpath.WithUniformPaths(),
		cfpath.WithRand(pathsgraph.NewRand(11)))
	require.NoError(t, err)

	seen := map[string]int{}
	for _, p := range samples {
		seen[strings.Join(p, "→")]++
	}
	require.Len(t, seen, 3)
	for key, n := range seen {
		assert.InDelta(t, 1.0/3.0, float64(n)/draws, 0.05, "path %s", key)
	}
}

func TestSampleDeterminism(t *testing.T) {
	g := buildDiamond(t)

	a, err := cfpath.SamplePaths(g, "A", "D", 20, cfpath.WithRand(pathsgraph.NewRand(5)))
	require.NoError(t, err)
	b, err := cfpath.SamplePaths(g, "A", "D", 20, cfpath.WithRand(pathsgraph.NewRand(5)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := cfpath.SamplePaths(g, "A", "D", 20)
	require.NoError(t, err)
	d, err := cfpath.SamplePaths(g, "A", "D", 20)
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestReachSetReuse(t *testing.T) {
	g := buildDiamond(t)
	rs, err := reach.Compute(g, "A", "D", reach.WithMaxDepth(4))
	require.NoError(t, err)

	fresh, err := cfpath.EnumeratePaths(g, "A", "D", cfpath.WithMaxDepth(4))
	require.NoError(t, err)
	cached, err := cfpath.EnumeratePaths(g, "A", "D",
		cfpath.WithMaxDepth(4), cfpath.WithReachSets(rs))
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
}

func TestValidation(t *testing.T) {
	g := buildDiamond(t)

	_, err := cfpath.SamplePaths(nil, "A", "D", 1)
	assert.ErrorIs(t, err, cfpath.ErrGraphNil)

	_, err = cfpath.SamplePaths(g, "A", "D", 1, cfpath.WithLength(-1))
	assert.ErrorIs(t, err, cfpath.ErrOptionViolation)
	_, err = cfpath.SamplePaths(g, "A", "D", 1, cfpath.WithMaxDepth(0))
	assert.ErrorIs(t, err, cfpath.ErrOptionViolation)
	_, err = cfpath.SamplePaths(g, "A", "D", 1, cfpath.WithMaxRounds(0))
	assert.ErrorIs(t, err, cfpath.ErrOptionViolation)
	_, err = cfpath.SamplePaths(g, "A", "D", 1, cfpath.WithRand(nil))
	assert.ErrorIs(t, err, cfpath.ErrOptionViolation)
	_, err = cfpath.CountPaths(g, "A", "D", cfpath.WithTargetParity(core.Sign(7)))
	assert.ErrorIs(t, err, cfpath.ErrOptionViolation)

	_, err = cfpath.EnumeratePaths(g, "missing", "D")
	assert.ErrorIs(t, err, reach.ErrSourceNotFound)
	_, err = cfpath.EnumeratePaths(g, "A", "missing")
	assert.ErrorIs(t, err, reach.ErrTargetNotFound)
}
