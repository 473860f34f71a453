package cfpg

import (
	"fmt"
	"sort"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/precfpg"
)

// CFPG is a cycle-free paths graph over split nodes. Exactly the
// cycle-free paths of its precursor flow through it, and every
// complete walk is cycle-free, so sampling needs no history.
// Immutable once built, except for SetUniformPathDistribution.
type CFPG struct {
	// Source is the single level-0 split node.
	Source SplitNode

	// Target is the single level-Length split node.
	Target SplitNode

	// Length is the exact number of arcs of every represented path.
	Length int

	next     map[SplitNode][]SplitNode
	sigs     map[SplitNode]bits.Bits
	universe []pathsgraph.Node
	weights  map[splitEdge]float64
	src      *core.Graph
}

type splitEdge struct {
	from, to SplitNode
}

// FromGraph runs the full chain — reachability sweep, paths graph,
// pre-CFPG, CFPG — in one call.
func FromGraph(g *core.Graph, source, target string, length int, opts ...Option) (*CFPG, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	preOpts := []precfpg.Option{
		precfpg.WithMaxRounds(o.MaxRounds),
		precfpg.WithTargetParity(o.TargetParity),
	}
	if o.Reach != nil {
		preOpts = append(preOpts, precfpg.WithReachSets(o.Reach))
	}
	pre, err := precfpg.FromGraph(g, source, target, length, preOpts...)
	if err != nil {
		return nil, fmt.Errorf("cfpg: precursor: %w", err)
	}

	return FromPreCFPG(pre, opts...)
}

// FromPathsGraph converges pg into a pre-CFPG and splits it.
func FromPathsGraph(pg *pathsgraph.PathsGraph, opts ...Option) (*CFPG, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	pre, err := precfpg.FromPathsGraph(pg, precfpg.WithMaxRounds(o.MaxRounds))
	if err != nil {
		return nil, fmt.Errorf("cfpg: precursor: %w", err)
	}

	return FromPreCFPG(pre, opts...)
}

// FromPreCFPG splits the converged precursor into history classes.
//
// The build runs backward from the target. At each level a raw node is
// paired with every copy one level up; the pair's signature is the set
// of precursor nodes still usable by a source prefix compatible with
// that continuation, and pairs sharing a signature share a copy. An
// empty precursor yields a non-nil empty CFPG.
//
// Complexity: O(L · n² · W) worst case, with n the precursor width per
// level and W the tag-word count.
func FromPreCFPG(pre *precfpg.PreCFPG, opts ...Option) (*CFPG, error) {
	if pre == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	c := &CFPG{
		Source:   SplitNode{Depth: pre.Source.Depth, Name: pre.Source.Name, Parity: pre.Source.Parity},
		Target:   SplitNode{Depth: pre.Target.Depth, Name: pre.Target.Name, Parity: pre.Target.Parity},
		Length:   pre.Length,
		next:     map[SplitNode][]SplitNode{},
		sigs:     map[SplitNode]bits.Bits{},
		universe: pre.Universe(),
		src:      pre.Underlying(),
	}
	if pre.Empty() {
		return c, nil
	}

	b := &splitBuilder{pre: pre, g: pre.Graph(), c: c, n: len(c.universe), onLevel: o.OnLevel}
	b.pos = make(map[pathsgraph.Node]int, b.n)
	for i, u := range c.universe {
		b.pos[u] = i
	}
	b.run()

	return c, nil
}

// splitBuilder carries the shared build state: the precursor, its
// skeleton, and the bit positions of the tag universe.
type splitBuilder struct {
	pre     *precfpg.PreCFPG
	g       *pathsgraph.DiGraph
	c       *CFPG
	pos     map[pathsgraph.Node]int
	n       int
	onLevel func(depth, copies int)
}

func (b *splitBuilder) run() {
	c := b.c

	// Single copy of the target; its signature is its full tag set.
	c.sigs[c.Target] = b.copyTags(b.pre.Target)
	c.next[c.Target] = nil
	if c.Length == 0 {
		return
	}

	upper := []SplitNode{c.Target}
	for i := c.Length - 1; i >= 1; i-- {
		upper = b.level(i, upper)
		b.onLevel(i, len(upper))
		if len(upper) == 0 {
			break
		}
	}

	// The source has one prefix (itself), so it feeds every level-1
	// copy. The sweep below handles a dead middle.
	c.sigs[c.Source] = b.copyTags(b.pre.Source)
	c.next[c.Source] = upper
	b.sweepReachable()
}

// level builds the depth-i copies given the copies one level up.
func (b *splitBuilder) level(i int, upper []SplitNode) []SplitNode {
	var lower []SplitNode
	cand := bits.New(b.n)
	for _, x := range b.g.NodesAtDepth(i) {
		xt, ok := b.pre.TagBits(x)
		if !ok {
			continue
		}

		// Step 1: pair x with each compatible continuation and freeze
		// the surviving prefix set.
		groups := map[string]*sigGroup{}
		for _, w := range upper {
			if !b.g.HasEdge(x, w.Base()) {
				continue
			}
			cand.And(b.c.sigs[w], xt)
			frozen := b.prefixSurvivors(cand, x)
			if frozen.AllZeros() {
				continue
			}
			ord := frozen.Slice()
			key := fmt.Sprint(ord)
			grp, seen := groups[key]
			if !seen {
				grp = &sigGroup{set: frozen, order: ord}
				groups[key] = grp
			}
			grp.succs = append(grp.succs, w)
		}
		if len(groups) == 0 {
			continue
		}

		// Step 2: number the copies in canonical signature order so
		// rebuilding yields identical names.
		ordered := make([]*sigGroup, 0, len(groups))
		for _, grp := range groups {
			ordered = append(ordered, grp)
		}
		sort.Slice(ordered, func(a, z int) bool {
			return lessIntSlice(ordered[a].order, ordered[z].order)
		})
		for idx, grp := range ordered {
			split := SplitNode{Depth: i, Name: x.Name, Parity: x.Parity, Copy: idx}
			SortNodes(grp.succs)
			b.c.sigs[split] = grp.set
			b.c.next[split] = grp.succs
			lower = append(lower, split)
		}
	}
	SortNodes(lower)

	return lower
}

// sigGroup accumulates the continuations sharing one frozen signature.
type sigGroup struct {
	set   bits.Bits
	order []int
	succs []SplitNode
}

// prefixSurvivors prunes the candidate set down to the nodes lying on
// a complete source→x route. Empty when no such route remains.
func (b *splitBuilder) prefixSurvivors(cand bits.Bits, x pathsgraph.Node) bits.Bits {
	sub := pathsgraph.NewDiGraph()
	members := cand.Slice()
	for _, p := range members {
		sub.AddNode(b.c.universe[p])
	}
	for _, p := range members {
		u := b.c.universe[p]
		for _, v := range b.g.Successors(u) {
			if cand.Bit(b.pos[v]) == 1 {
				sub.AddEdge(u, v)
			}
		}
	}

	pruned := sub.Prune(nil, b.pre.Source, x)
	out := bits.New(b.n)
	for _, u := range pruned.Nodes() {
		out.SetBit(b.pos[u], 1)
	}

	return out
}

// sweepReachable drops copies the source cannot reach; when the target
// itself is unreachable the whole structure resets to empty.
func (b *splitBuilder) sweepReachable() {
	c := b.c
	visited := map[SplitNode]struct{}{c.Source: {}}
	queue := []SplitNode{c.Source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range c.next[u] {
			if _, ok := visited[w]; !ok {
				visited[w] = struct{}{}
				queue = append(queue, w)
			}
		}
	}

	if _, ok := visited[c.Target]; !ok {
		c.next = map[SplitNode][]SplitNode{}
		c.sigs = map[SplitNode]bits.Bits{}

		return
	}
	for u := range c.next {
		if _, ok := visited[u]; !ok {
			delete(c.next, u)
			delete(c.sigs, u)
		}
	}
}

// copyTags snapshots a precursor tag set into builder-owned storage.
func (b *splitBuilder) copyTags(u pathsgraph.Node) bits.Bits {
	tb, _ := b.pre.TagBits(u)
	out := bits.New(b.n)
	out.Or(tb, tb)

	return out
}

func lessIntSlice(a, z []int) bool {
	for i := 0; i < len(a) && i < len(z); i++ {
		if a[i] != z[i] {
			return a[i] < z[i]
		}
	}

	return len(a) < len(z)
}
