// Package pathtree stores an explicit set of paths as a common-prefix
// tree for cheap repeated sampling.
//
// The tree is the reuse endpoint of the extraction pipeline: once
// paths have been sampled or enumerated, loading them into a Tree
// allows drawing from the set again and again without touching the
// pipeline. Each tree node is the common prefix of every path below
// it; a leaf is a complete path. Weighted sampling walks root→leaf,
// drawing among children by the weight of the underlying arc into
// each child (uniform when no weight source is attached).
//
// Paths that are strict prefixes of longer stored paths merge into
// them and are not sampleable on their own; pipeline outputs never
// contain such pairs, because every path ends at its only copy of the
// target name.
package pathtree

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// Option customizes tree construction. Option constructors validate
// and panic on meaningless inputs; methods never panic.
type Option func(*config)

type config struct {
	weights *core.Graph
}

// WithWeightsFrom attaches the graph the paths were extracted from;
// arc weights then steer sampling draws. Panics on nil.
func WithWeightsFrom(g *core.Graph) Option {
	if g == nil {
		panic("pathtree: WithWeightsFrom(nil)")
	}

	return func(c *config) { c.weights = g }
}

// node is one shared prefix; children stay sorted by name.
type node struct {
	name     string
	weight   float64
	children []*node
}

func (n *node) child(name string) *node {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= name
	})
	if i < len(n.children) && n.children[i].name == name {
		return n.children[i]
	}

	return nil
}

func (n *node) attach(c *node) {
	i := sort.Search(len(n.children), func(i int) bool {
		return n.children[i].name >= c.name
	})
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
}

// Tree is a prefix tree over a fixed path set. Immutable once built.
type Tree struct {
	root *node
}

// New builds the tree. Duplicate paths collapse; empty paths are
// skipped. The zero-length root draw carries weight 1, deeper draws
// the underlying arc weight when WithWeightsFrom is given.
//
// Complexity: O(total path length · log fanout).
func New(paths [][]string, opts ...Option) *Tree {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{root: &node{}}
	for _, path := range paths {
		if len(path) == 0 {
			continue
		}
		cur := t.root
		for i, name := range path {
			next := cur.child(name)
			if next == nil {
				next = &node{name: name, weight: stepWeight(cfg.weights, cur.name, name, i)}
				cur.attach(next)
			}
			cur = next
		}
	}

	return t
}

// stepWeight resolves the draw weight into a child. Signed graphs may
// carry parallel opposite arcs between the same names; a name-level
// step cannot tell them apart, so their weights add up.
func stepWeight(src *core.Graph, prev, name string, depth int) float64 {
	if depth == 0 || src == nil || !src.Weighted() {
		return core.DefaultEdgeWeight
	}

	total, found := 0.0, false
	for _, s := range []core.Sign{core.Positive, core.Negative} {
		if w, err := src.Weight(prev, name, s); err == nil {
			total += w
			found = true
		}
	}
	if !found {
		return core.DefaultEdgeWeight
	}

	return total
}

// Empty reports whether the tree stores no paths.
func (t *Tree) Empty() bool { return len(t.root.children) == 0 }

// Size returns the number of distinct sampleable paths (leaves).
func (t *Tree) Size() int {
	if t.Empty() {
		return 0
	}

	return countLeaves(t.root)
}

func countLeaves(n *node) int {
	if len(n.children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c)
	}

	return total
}

// Paths lists every stored path in canonical (name-sorted) order.
func (t *Tree) Paths() [][]string {
	paths := [][]string{}
	if t.Empty() {
		return paths
	}

	var walk []string
	var dfs func(n *node)
	dfs = func(n *node) {
		if len(n.children) == 0 {
			paths = append(paths, append([]string(nil), walk...))

			return
		}
		for _, c := range n.children {
			walk = append(walk, c.name)
			dfs(c)
			walk = walk[:len(walk)-1]
		}
	}
	dfs(t.root)

	return paths
}

// Sample draws num paths with replacement by weighted root→leaf
// walks. A nil rng falls back to a fresh deterministic generator.
// Sampling an empty tree yields an empty, non-nil slice.
func (t *Tree) Sample(num int, rng *rand.Rand) [][]string {
	paths := [][]string{}
	if t.Empty() || num <= 0 {
		return paths
	}
	if rng == nil {
		rng = pathsgraph.NewRand(pathsgraph.DefaultSeed)
	}

	for i := 0; i < num; i++ {
		var walk []string
		cur := t.root
		for len(cur.children) > 0 {
			cur = pickChild(cur.children, rng)
			walk = append(walk, cur.name)
		}
		paths = append(paths, walk)
	}

	return paths
}

func pickChild(children []*node, rng *rand.Rand) *node {
	if len(children) == 1 {
		return children[0]
	}

	total := 0.0
	for _, c := range children {
		total += c.weight
	}
	if total <= 0 {
		return children[rng.Intn(len(children))]
	}

	r := rng.Float64() * total
	acc := 0.0
	for _, c := range children {
		acc += c.weight
		if r < acc {
			return c
		}
	}

	// Rounding may leave r a hair past the last bucket.
	return children[len(children)-1]
}
