package cfpg_test

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cfpath/cfpg"
	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// CFPGSuite exercises construction, counting, enumeration and the
// sampling distributions of the split graph.
type CFPGSuite struct {
	suite.Suite
}

// sn builds an unsigned split-node literal.
func sn(depth int, name string, copyIdx int) cfpg.SplitNode {
	return cfpg.SplitNode{Depth: depth, Name: name, Copy: copyIdx}
}

func pn(depth int, name string) pathsgraph.Node {
	return pathsgraph.Node{Depth: depth, Name: name}
}

func mustEdges(t *testing.T, g *core.Graph, pairs [][2]string) {
	t.Helper()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}
}

// buildBraid wires the braid fixture: the junction D must split,
// because a walker arriving via B may only leave via C and vice versa.
func buildBraid(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustEdges(t, g, [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "B"}, {"D", "C"},
		{"B", "E"}, {"C", "E"},
	})

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

// TestBraidSplitsJunction verifies the node split at the braid's
// junction: two history classes with crossed continuations.
func (s *CFPGSuite) TestBraidSplitsJunction() {
	c, err := cfpg.FromGraph(buildBraid(s.T()), "A", "E", 4)
	require.NoError(s.T(), err)
	require.False(s.T(), c.Empty())

	require.Equal(s.T(), 8, c.NodeCount())
	require.True(s.T(), c.HasNode(sn(2, "D", 0)))
	require.True(s.T(), c.HasNode(sn(2, "D", 1)))
	require.False(s.T(), c.HasNode(sn(2, "D", 2)))

	// Copy numbering follows signature order: {A,(1,B),D} before {A,(1,C),D}.
	require.Equal(s.T(),
		[]pathsgraph.Node{pn(0, "A"), pn(1, "B"), pn(2, "D")},
		c.Signature(sn(2, "D", 0)))
	require.Equal(s.T(),
		[]pathsgraph.Node{pn(0, "A"), pn(1, "C"), pn(2, "D")},
		c.Signature(sn(2, "D", 1)))

	// Arriving via B forces leaving via C, and vice versa.
	require.Equal(s.T(), []cfpg.SplitNode{sn(3, "C", 0)}, c.Successors(sn(2, "D", 0)))
	require.Equal(s.T(), []cfpg.SplitNode{sn(3, "B", 0)}, c.Successors(sn(2, "D", 1)))

	require.Equal(s.T(), 2, c.CountPaths())
	require.Equal(s.T(), 2.0, c.WeightSum())
	require.Equal(s.T(), []string{"A→B→D→C→E", "A→C→D→B→E"}, pathKeys(c.EnumeratePaths()))
}

// TestSampleStaysCycleFree draws from the braid; the two cyclic walks
// of length four must never appear.
func (s *CFPGSuite) TestSampleStaysCycleFree() {
	c, err := cfpg.FromGraph(buildBraid(s.T()), "A", "E", 4)
	require.NoError(s.T(), err)

	seen := map[string]int{}
	for _, p := range c.SamplePaths(100, pathsgraph.NewRand(3)) {
		seen[strings.Join(p, "→")]++
	}
	require.Len(s.T(), seen, 2)
	require.Positive(s.T(), seen["A→B→D→C→E"])
	require.Positive(s.T(), seen["A→C→D→B→E"])
}

// TestOnLevelHook observes the backward sweep level by level.
func (s *CFPGSuite) TestOnLevelHook() {
	var got [][2]int
	_, err := cfpg.FromGraph(buildBraid(s.T()), "A", "E", 4,
		cfpg.WithOnLevel(func(depth, copies int) {
			got = append(got, [2]int{depth, copies})
		}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][2]int{{3, 2}, {2, 2}, {1, 2}}, got)
}

// TestDeterministicRebuild checks that building twice yields identical
// copy numbering and wiring.
func (s *CFPGSuite) TestDeterministicRebuild() {
	a, err := cfpg.FromGraph(buildBraid(s.T()), "A", "E", 4)
	require.NoError(s.T(), err)
	b, err := cfpg.FromGraph(buildBraid(s.T()), "A", "E", 4)
	require.NoError(s.T(), err)

	require.Equal(s.T(), a.Nodes(), b.Nodes())
	for _, u := range a.Nodes() {
		require.Equal(s.T(), a.Successors(u), b.Successors(u), "successors of %v", u)
		require.Equal(s.T(), a.Signature(u), b.Signature(u), "signature of %v", u)
	}
}

// TestEmptyWhenNoRoutes covers a graph whose only length-3 walk
// revisits the source name.
func (s *CFPGSuite) TestEmptyWhenNoRoutes() {
	g := core.NewGraph()
	mustEdges(s.T(), g, [][2]string{{"A", "B"}, {"B", "A"}, {"B", "D"}, {"A", "D"}})

	c, err := cfpg.FromGraph(g, "A", "D", 3)
	require.NoError(s.T(), err)
	require.True(s.T(), c.Empty())
	require.Zero(s.T(), c.CountPaths())
	require.Empty(s.T(), c.EnumeratePaths())
	require.Empty(s.T(), c.SamplePaths(5, nil))
	require.Nil(s.T(), c.SampleSinglePath(nil))
}

// TestTrivialLengthZero pins the one-node graph for source == target.
func (s *CFPGSuite) TestTrivialLengthZero() {
	g := core.NewGraph()
	mustEdges(s.T(), g, [][2]string{{"A", "B"}})

	c, err := cfpg.FromGraph(g, "A", "A", 0)
	require.NoError(s.T(), err)
	require.False(s.T(), c.Empty())
	require.Equal(s.T(), 1, c.NodeCount())
	require.Equal(s.T(), 1, c.CountPaths())
	require.Equal(s.T(), [][]string{{"A"}}, c.EnumeratePaths())
	require.Equal(s.T(), [][]string{{"A"}, {"A"}}, c.SamplePaths(2, nil))
}

// TestLengthOne pins the direct-edge case: no interior levels at all.
func (s *CFPGSuite) TestLengthOne() {
	g := core.NewGraph()
	mustEdges(s.T(), g, [][2]string{{"A", "B"}, {"B", "A"}})

	c, err := cfpg.FromGraph(g, "A", "B", 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, c.NodeCount())
	require.Equal(s.T(), [][]string{{"A", "B"}}, c.EnumeratePaths())
	require.Equal(s.T(), []cfpg.SplitNode{c.Target}, c.Successors(c.Source))
}

// TestSignedParity separates the two routes of a signed fixture by
// their accumulated sign.
func (s *CFPGSuite) TestSignedParity() {
	g := core.NewSignedGraph()
	require.NoError(s.T(), g.AddEdge("A", "B"))
	require.NoError(s.T(), g.AddEdge("B", "C", core.WithSign(core.Negative)))
	require.NoError(s.T(), g.AddEdge("A", "D"))
	require.NoError(s.T(), g.AddEdge("D", "C"))

	neg, err := cfpg.FromGraph(g, "A", "C", 2, cfpg.WithTargetParity(core.Negative))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A→B→C"}, pathKeys(neg.EnumeratePaths()))
	require.Equal(s.T(), core.Negative, neg.Target.Parity)

	pos, err := cfpg.FromGraph(g, "A", "C", 2, cfpg.WithTargetParity(core.Positive))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A→D→C"}, pathKeys(pos.EnumeratePaths()))
}

// TestWeightedDraws checks that arc weights steer the successor draw:
// a 3:1 fork should split samples roughly 3:1.
func (s *CFPGSuite) TestWeightedDraws() {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(s.T(), g.AddEdge("S", "B1", core.WithWeight(3)))
	require.NoError(s.T(), g.AddEdge("S", "B2", core.WithWeight(1)))
	require.NoError(s.T(), g.AddEdge("B1", "T", core.WithWeight(1)))
	require.NoError(s.T(), g.AddEdge("B2", "T", core.WithWeight(1)))

	c, err := cfpg.FromGraph(g, "S", "T", 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3.0, c.EdgeWeight(c.Source, sn(1, "B1", 0)))
	require.Equal(s.T(), 4.0, c.WeightSum())

	const draws = 2000
	viaB1 := 0
	for _, p := range c.SamplePaths(draws, pathsgraph.NewRand(7)) {
		if p[1] == "B1" {
			viaB1++
		}
	}
	require.InDelta(s.T(), 0.75, float64(viaB1)/draws, 0.04)
}

// TestUniformPathDistribution reweights an asymmetric fixture: three
// paths, one of which grabs half the probability under plain
// per-successor draws, and exactly a third after reweighting.
func (s *CFPGSuite) TestUniformPathDistribution() {
	g := core.NewGraph()
	mustEdges(s.T(), g, [][2]string{
		{"S", "A"}, {"S", "B"},
		{"A", "C"}, {"A", "D"}, {"B", "E"},
		{"C", "T"}, {"D", "T"}, {"E", "T"},
	})

	c, err := cfpg.FromGraph(g, "S", "T", 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, c.CountPaths())

	c.SetUniformPathDistribution()
	require.Equal(s.T(), 2.0, c.EdgeWeight(c.Source, sn(1, "A", 0)))
	require.Equal(s.T(), 1.0, c.EdgeWeight(c.Source, sn(1, "B", 0)))

	const draws = 3000
	seen := map[string]int{}
	for _, p := range c.SamplePaths(draws, pathsgraph.NewRand(9)) {
		seen[strings.Join(p, "→")]++
	}
	require.Len(s.T(), seen, 3)
	for key, n := range seen {
		require.InDelta(s.T(), 1.0/3.0, float64(n)/draws, 0.035, "path %s", key)
	}
}

// TestMatchesBruteForce cross-checks counting and enumeration against
// a straight DFS over the underlying graph, on seeded sparse graphs.
func (s *CFPGSuite) TestMatchesBruteForce() {
	for seed := int64(1); seed <= 3; seed++ {
		g := randomGraph(s.T(), seed, 6, 0.35, false)
		for length := 1; length <= 4; length++ {
			c, err := cfpg.FromGraph(g, "0", "5", length, cfpg.WithMaxRounds(100))
			require.NoError(s.T(), err, "seed %d length %d", seed, length)

			want := simplePathsExact(s.T(), g, "0", "5", length, core.Positive)
			require.Equal(s.T(), len(want), c.CountPaths(), "seed %d length %d", seed, length)
			require.Equal(s.T(), pathKeys(want), pathKeys(c.EnumeratePaths()),
				"seed %d length %d", seed, length)
		}
	}
}

// TestMatchesBruteForceSigned repeats the cross-check with random arc
// signs and a required target parity.
func (s *CFPGSuite) TestMatchesBruteForceSigned() {
	for seed := int64(4); seed <= 6; seed++ {
		g := randomGraph(s.T(), seed, 6, 0.35, true)
		for _, parity := range []core.Sign{core.Positive, core.Negative} {
			c, err := cfpg.FromGraph(g, "0", "5", 3,
				cfpg.WithMaxRounds(100), cfpg.WithTargetParity(parity))
			require.NoError(s.T(), err, "seed %d parity %v", seed, parity)

			want := simplePathsExact(s.T(), g, "0", "5", 3, parity)
			require.Equal(s.T(), pathKeys(want), pathKeys(c.EnumeratePaths()),
				"seed %d parity %v", seed, parity)
		}
	}
}

// TestValidation covers nil input and option violations.
func (s *CFPGSuite) TestValidation() {
	_, err := cfpg.FromPreCFPG(nil)
	require.ErrorIs(s.T(), err, cfpg.ErrGraphNil)

	g := buildBraid(s.T())
	_, err = cfpg.FromGraph(g, "A", "E", 4, cfpg.WithMaxRounds(0))
	require.ErrorIs(s.T(), err, cfpg.ErrOptionViolation)

	_, err = cfpg.FromGraph(g, "A", "E", 4, cfpg.WithTargetParity(core.Sign(9)))
	require.ErrorIs(s.T(), err, cfpg.ErrOptionViolation)

	_, err = cfpg.FromGraph(g, "Z", "E", 4)
	require.True(s.T(), errors.Is(err, pathsgraph.ErrSourceNotFound))

	_, err = cfpg.FromGraph(g, "A", "E", -2)
	require.True(s.T(), errors.Is(err, pathsgraph.ErrBadLength))
}

// randomGraph wires a seeded sparse digraph over n vertices named by
// index; signed graphs flip a fair coin per arc.
func randomGraph(t *testing.T, seed int64, n int, p float64, signed bool) *core.Graph {
	t.Helper()
	var g *core.Graph
	if signed {
		g = core.NewSignedGraph()
	} else {
		g = core.NewGraph()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}

	rng := pathsgraph.NewRand(seed)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			sign := core.Positive
			if signed && rng.Float64() < 0.5 {
				sign = core.Negative
			}
			require.NoError(t, g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), core.WithSign(sign)))
		}
	}

	return g
}

// simplePathsExact enumerates cycle-free paths of exactly length arcs
// ending at target with the given accumulated parity, by plain DFS.
func simplePathsExact(t *testing.T, g *core.Graph, source, target string, length int, parity core.Sign) [][]string {
	t.Helper()
	var out [][]string
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return out
	}

	seen := map[string]bool{source: true}
	walk := []string{source}
	var dfs func(cur string, acc core.Sign, depth int)
	dfs = func(cur string, acc core.Sign, depth int) {
		if depth == length {
			if cur == target && acc == parity {
				out = append(out, append([]string(nil), walk...))
			}

			return
		}
		arcs, err := g.OutArcs(cur)
		if err != nil {
			return
		}
		for _, a := range arcs {
			if seen[a.To] {
				continue
			}
			seen[a.To] = true
			walk = append(walk, a.To)
			dfs(a.To, acc.Compose(a.Sign), depth+1)
			walk = walk[:len(walk)-1]
			delete(seen, a.To)
		}
	}
	dfs(source, core.Positive, 0)

	return out
}

// Entry point for running the suite.
func TestCFPGSuite(t *testing.T) {
	suite.Run(t, new(CFPGSuite))
}
