package precfpg

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
)

// PreCFPG is the converged cycle-free skeleton of one paths graph,
// carrying per-node tag sets. Immutable once built.
type PreCFPG struct {
	// Source is the level-0 node of the underlying paths graph.
	Source pathsgraph.Node

	// Target is the level-Length node.
	Target pathsgraph.Node

	// Length is the exact number of arcs of every represented path.
	Length int

	graph *pathsgraph.DiGraph
	tags  map[pathsgraph.Node]bits.Bits
	index *tagIndex
	src   *core.Graph
}

// FromGraph runs the full chain — reachability sweep, paths graph,
// pre-CFPG — in one call.
func FromGraph(g *core.Graph, source, target string, length int, opts ...Option) (*PreCFPG, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	pgOpts := []pathsgraph.Option{pathsgraph.WithTargetParity(o.TargetParity)}
	if o.Reach != nil {
		pgOpts = append(pgOpts, pathsgraph.WithReachSets(o.Reach))
	}
	pg, err := pathsgraph.FromGraph(g, source, target, length, pgOpts...)
	if err != nil {
		return nil, fmt.Errorf("precfpg: leveled graph: %w", err)
	}

	return FromPathsGraph(pg, opts...)
}

// FromPathsGraph prunes pg to its cycle-free fixed point.
//
// An empty pg, or one whose every route depends on revisiting an
// endpoint name, yields a non-nil empty PreCFPG. ErrNoConvergence is
// returned when WithMaxRounds is exhausted first.
func FromPathsGraph(pg *pathsgraph.PathsGraph, opts ...Option) (*PreCFPG, error) {
	if pg == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	p := &PreCFPG{
		Source: pg.Source,
		Target: pg.Target,
		Length: pg.Length,
		graph:  pathsgraph.NewDiGraph(),
		tags:   map[pathsgraph.Node]bits.Bits{},
		src:    pg.Underlying(),
	}
	if pg.Empty() {
		return p, nil
	}

	// Step 1: no cycle-free path passes through an interior copy of an
	// endpoint name; cut them all and cascade.
	g0 := initialize(pg)
	if g0.Empty() || !g0.HasNode(p.Source) || !g0.HasNode(p.Target) {
		return p, nil
	}

	// Step 2: freeze the tag universe on the initialized graph and seed
	// every node's tag set with the source.
	p.index = newTagIndex(g0.Nodes())
	tags := make(map[pathsgraph.Node]bits.Bits, len(p.index.order))
	for _, n := range p.index.order {
		b := p.index.zero()
		b.SetBit(p.index.pos[p.Source], 1)
		tags[n] = b
	}

	// Step 3: sweep until the graph reproduces itself. Each sweep only
	// ever shrinks the edge set, so the cap names pathology, not a
	// tuning knob most callers should need.
	base, baseTags := g0, tags
	for round := 1; ; round++ {
		if round > o.MaxRounds {
			return nil, fmt.Errorf("%w after %d rounds", ErrNoConvergence, o.MaxRounds)
		}
		cur, curTags := p.sweep(base, baseTags)
		o.OnRound(round, cur.NodeCount(), cur.EdgeCount())
		converged := cur.Empty() || base.Equal(cur)
		base, baseTags = cur, curTags
		if converged {
			break
		}
	}

	p.graph = base
	if base.Empty() {
		p.index = nil
	} else {
		p.tags = baseTags
	}

	return p, nil
}

// initialize strips interior endpoint-name copies from the paths graph.
func initialize(pg *pathsgraph.PathsGraph) *pathsgraph.DiGraph {
	var removals []pathsgraph.Node
	for _, n := range pg.Graph().Nodes() {
		if n == pg.Source || n == pg.Target {
			continue
		}
		if n.Name == pg.Source.Name || n.Name == pg.Target.Name {
			removals = append(removals, n)
		}
	}

	return pg.Graph().Prune(removals, pg.Source, pg.Target)
}

// sweep rebuilds the graph depth by depth. At depth k the new graph is
// the union over the depth-k nodes x of x's pruned route subgraph, and
// surviving nodes at depth ≥ k gain the tag x. An empty intermediate
// result propagates straight through.
func (p *PreCFPG) sweep(
	base *pathsgraph.DiGraph,
	baseTags map[pathsgraph.Node]bits.Bits,
) (*pathsgraph.DiGraph, map[pathsgraph.Node]bits.Bits) {
	cur, curTags := base, baseTags
	for k := 1; k <= p.Length; k++ {
		if cur.Empty() {
			break
		}

		merged := pathsgraph.NewDiGraph()
		gained := map[pathsgraph.Node]bits.Bits{}
		for _, x := range cur.NodesAtDepth(k) {
			gx, cycleCopies := p.cones(cur, x)
			gxp := gx.Prune(cycleCopies, p.Source, p.Target)
			merged.Union(gxp)
			for _, v := range gxp.Nodes() {
				if v.Depth < k {
					continue
				}
				gb, ok := gained[v]
				if !ok {
					gb = p.index.zero()
					gained[v] = gb
				}
				gb.SetBit(p.index.pos[x], 1)
			}
		}

		newTags := make(map[pathsgraph.Node]bits.Bits, merged.NodeCount())
		for _, v := range merged.Nodes() {
			nb := p.index.zero()
			if old, ok := curTags[v]; ok {
				nb.Or(nb, old)
			}
			if gb, ok := gained[v]; ok {
				nb.Or(nb, gb)
			}
			newTags[v] = nb
		}
		cur, curTags = merged, newTags
	}

	return cur, curTags
}

// cones assembles x's route subgraph inside h: the backward cone of
// prefixes into x unioned with the forward cone of suffixes out of x,
// as an edge subgraph. It also reports the forward-cone nodes carrying
// x's name at other depths — the witnesses of a second visit.
func (p *PreCFPG) cones(h *pathsgraph.DiGraph, x pathsgraph.Node) (*pathsgraph.DiGraph, []pathsgraph.Node) {
	gx := pathsgraph.NewDiGraph()
	var cycleCopies []pathsgraph.Node

	frontier := map[pathsgraph.Node]struct{}{x: {}}
	for len(frontier) > 0 {
		next := map[pathsgraph.Node]struct{}{}
		for u := range frontier {
			for _, v := range h.Successors(u) {
				gx.AddEdge(u, v)
				if _, dup := next[v]; !dup {
					next[v] = struct{}{}
					if v.Name == x.Name && v.Depth != x.Depth {
						cycleCopies = append(cycleCopies, v)
					}
				}
			}
		}
		frontier = next
	}

	frontier = map[pathsgraph.Node]struct{}{x: {}}
	for len(frontier) > 0 {
		next := map[pathsgraph.Node]struct{}{}
		for v := range frontier {
			for _, u := range h.Predecessors(v) {
				gx.AddEdge(u, v)
				next[u] = struct{}{}
			}
		}
		frontier = next
	}

	return gx, cycleCopies
}

// Graph exposes the converged skeleton. Treat as read-only.
func (p *PreCFPG) Graph() *pathsgraph.DiGraph { return p.graph }

// Underlying returns the graph the paths were extracted from.
func (p *PreCFPG) Underlying() *core.Graph { return p.src }

// Empty reports whether no cycle-free path of the requested length exists.
func (p *PreCFPG) Empty() bool { return p.graph.Empty() }

// Universe returns the tag bit order: position i of every tag set
// refers to the i-th node of this slice (canonical order over the
// initialized graph).
func (p *PreCFPG) Universe() []pathsgraph.Node {
	if p.index == nil {
		return nil
	}

	return append([]pathsgraph.Node(nil), p.index.order...)
}

// TagBits returns the raw tag set of n over the Universe order. The
// returned value shares storage with the PreCFPG; treat as read-only.
func (p *PreCFPG) TagBits(n pathsgraph.Node) (bits.Bits, bool) {
	b, ok := p.tags[n]

	return b, ok
}

// Tags returns the tag set of n decoded into canonically ordered
// nodes, or nil when n is not part of the converged graph.
func (p *PreCFPG) Tags(n pathsgraph.Node) []pathsgraph.Node {
	b, ok := p.tags[n]
	if !ok {
		return nil
	}

	return p.index.nodes(b)
}
