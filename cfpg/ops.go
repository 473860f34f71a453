package cfpg

import (
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// Empty reports whether no cycle-free path of the requested length exists.
func (c *CFPG) Empty() bool { return len(c.next) == 0 }

// NodeCount returns the number of split nodes.
func (c *CFPG) NodeCount() int { return len(c.next) }

// EdgeCount returns the number of split edges.
func (c *CFPG) EdgeCount() int {
	total := 0
	for _, succs := range c.next {
		total += len(succs)
	}

	return total
}

// HasNode reports membership of u.
func (c *CFPG) HasNode(u SplitNode) bool {
	_, ok := c.next[u]

	return ok
}

// Nodes returns every split node in canonical order.
func (c *CFPG) Nodes() []SplitNode {
	out := make([]SplitNode, 0, len(c.next))
	for u := range c.next {
		out = append(out, u)
	}
	SortNodes(out)

	return out
}

// Successors returns u's successor copies in canonical order, or nil
// when u is unknown.
func (c *CFPG) Successors(u SplitNode) []SplitNode {
	succs, ok := c.next[u]
	if !ok {
		return nil
	}

	return append([]SplitNode(nil), succs...)
}

// Signature decodes u's frozen signature: the precursor nodes usable
// by any path through u, in canonical order. Nil when u is unknown.
func (c *CFPG) Signature(u SplitNode) []pathsgraph.Node {
	b, ok := c.sigs[u]
	if !ok {
		return nil
	}
	positions := b.Slice()
	out := make([]pathsgraph.Node, len(positions))
	for i, p := range positions {
		out[i] = c.universe[p]
	}

	return out
}

// Underlying returns the graph the paths were extracted from.
func (c *CFPG) Underlying() *core.Graph { return c.src }

// EdgeWeight returns the draw weight of split edge u→w: the override
// installed by SetUniformPathDistribution when present, otherwise the
// underlying arc weight (1 on unweighted graphs).
func (c *CFPG) EdgeWeight(u, w SplitNode) float64 {
	if c.weights != nil {
		if wt, ok := c.weights[splitEdge{from: u, to: w}]; ok {
			return wt
		}
	}
	if c.src == nil || !c.src.Weighted() {
		return core.DefaultEdgeWeight
	}
	wt, err := c.src.Weight(u.Name, w.Name, u.Parity.Compose(w.Parity))
	if err != nil {
		return core.DefaultEdgeWeight
	}

	return wt
}

// CountPaths returns the number of distinct cycle-free paths.
//
// Complexity: O(V+E) over split nodes.
func (c *CFPG) CountPaths() int {
	if c.Empty() {
		return 0
	}

	return c.suffixCounts()[c.Source]
}

// suffixCounts computes, per split node, the number of paths from it
// to the target. Deeper nodes first; successors live one level up.
func (c *CFPG) suffixCounts() map[SplitNode]int {
	counts := map[SplitNode]int{c.Target: 1}
	nodes := c.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		u := nodes[i]
		if u == c.Target {
			continue
		}
		total := 0
		for _, w := range c.next[u] {
			total += counts[w]
		}
		counts[u] = total
	}

	return counts
}

// WeightSum returns the total draw mass: the sum over complete paths
// of the product of their edge weights. Equals CountPaths on
// unweighted graphs without an override.
func (c *CFPG) WeightSum() float64 {
	if c.Empty() {
		return 0
	}

	sums := map[SplitNode]float64{c.Target: 1}
	nodes := c.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		u := nodes[i]
		if u == c.Target {
			continue
		}
		total := 0.0
		for _, w := range c.next[u] {
			total += c.EdgeWeight(u, w) * sums[w]
		}
		sums[u] = total
	}

	return sums[c.Source]
}

// EnumeratePaths lists every cycle-free path as vertex names, in
// canonical successor order. Intended for small graphs; counting and
// sampling scale, enumeration does not.
func (c *CFPG) EnumeratePaths() [][]string {
	paths := [][]string{}
	for _, nodePath := range c.EnumerateNodePaths() {
		names := make([]string, len(nodePath))
		for i, u := range nodePath {
			names[i] = u.Name
		}
		paths = append(paths, names)
	}

	return paths
}

// EnumerateNodePaths lists every complete split-node path in canonical
// successor order.
func (c *CFPG) EnumerateNodePaths() [][]SplitNode {
	paths := [][]SplitNode{}
	if c.Empty() {
		return paths
	}

	walk := []SplitNode{c.Source}
	var dfs func(u SplitNode)
	dfs = func(u SplitNode) {
		if u == c.Target {
			paths = append(paths, append([]SplitNode(nil), walk...))

			return
		}
		for _, w := range c.next[u] {
			walk = append(walk, w)
			dfs(w)
			walk = walk[:len(walk)-1]
		}
	}
	dfs(c.Source)

	return paths
}

// SamplePaths draws num complete paths with replacement. Every draw is
// a memoryless successor walk: history lives in the node identity, so
// no bookkeeping and no dead ends. A nil rng falls back to a fresh
// deterministic generator. Sampling an empty CFPG yields an empty,
// non-nil slice.
//
// Complexity: O(num · L · d) with d the max out-degree.
func (c *CFPG) SamplePaths(num int, rng *rand.Rand) [][]string {
	paths := [][]string{}
	if c.Empty() || num <= 0 {
		return paths
	}
	rng = ensureRand(rng)

	for i := 0; i < num; i++ {
		paths = append(paths, c.sampleOne(rng))
	}

	return paths
}

// SampleSinglePath draws one complete path, or nil when the CFPG is empty.
func (c *CFPG) SampleSinglePath(rng *rand.Rand) []string {
	if c.Empty() {
		return nil
	}

	return c.sampleOne(ensureRand(rng))
}

func (c *CFPG) sampleOne(rng *rand.Rand) []string {
	path := []string{c.Source.Name}
	cur := c.Source
	for cur != c.Target {
		succs := c.next[cur]
		next := succs[0]
		if len(succs) > 1 {
			next = c.pickSuccessor(cur, succs, rng)
		}
		path = append(path, next.Name)
		cur = next
	}

	return path
}

// pickSuccessor draws one successor: uniformly on unweighted graphs,
// else by cumulative weight.
func (c *CFPG) pickSuccessor(u SplitNode, succs []SplitNode, rng *rand.Rand) SplitNode {
	if c.weights == nil && (c.src == nil || !c.src.Weighted()) {
		return succs[rng.Intn(len(succs))]
	}

	total := 0.0
	for _, w := range succs {
		total += c.EdgeWeight(u, w)
	}
	if total <= 0 {
		return succs[rng.Intn(len(succs))]
	}

	r := rng.Float64() * total
	acc := 0.0
	for _, w := range succs {
		acc += c.EdgeWeight(u, w)
		if r < acc {
			return w
		}
	}

	// Rounding may leave r a hair past the last bucket.
	return succs[len(succs)-1]
}

// SetUniformPathDistribution overrides every edge weight with the
// number of complete paths through its head. Per-step draws then give
// every complete path identical probability, regardless of structure:
// the per-node normalizers telescope to 1/CountPaths.
func (c *CFPG) SetUniformPathDistribution() {
	if c.Empty() {
		return
	}

	counts := c.suffixCounts()
	weights := make(map[splitEdge]float64, c.EdgeCount())
	for u, succs := range c.next {
		for _, w := range succs {
			weights[splitEdge{from: u, to: w}] = float64(counts[w])
		}
	}
	c.weights = weights
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	return rng
}
