package pathsgraph

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/reach"
)

// PathsGraph condenses every source→target walk of exactly Length arcs
// into one leveled DAG. See the package documentation for the
// structural guarantee the construction upholds.
type PathsGraph struct {
	// Source is the level-0 node: the source vertex at Positive parity.
	Source Node

	// Target is the level-Length node at the requested target parity.
	Target Node

	// Length is the exact number of arcs of every represented walk.
	Length int

	graph *DiGraph
	src   *core.Graph
}

// FromGraph builds the paths graph of all length-long walks source→target.
//
// A pair that admits no such walk — unreachable endpoints, a horizon
// that walks cannot fill, or a parity no walk can accumulate — yields a
// non-nil empty PathsGraph, not an error. Errors are reserved for bad
// input: ErrGraphNil, ErrSourceNotFound, ErrTargetNotFound,
// ErrBadLength and ErrOptionViolation.
func FromGraph(g *core.Graph, source, target string, length int, opts ...Option) (*PathsGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetNotFound
	}
	if o.TargetParity == core.Negative && !g.Signed() {
		return nil, fmt.Errorf("%w: Negative target parity on an unsigned graph", ErrOptionViolation)
	}

	pg := &PathsGraph{
		Source: Node{Depth: 0, Name: source, Parity: core.Positive},
		Target: Node{Depth: length, Name: target, Parity: o.TargetParity},
		Length: length,
		graph:  NewDiGraph(),
		src:    g,
	}

	// A zero-length walk is the trivial stand-still at source==target.
	if length == 0 {
		if source == target && o.TargetParity == core.Positive {
			pg.graph.AddNode(pg.Source)
		}

		return pg, nil
	}

	rs := o.Reach
	if rs == nil {
		var err error
		rs, err = reach.Compute(g, source, target, reach.WithMaxDepth(length))
		if err != nil {
			return nil, fmt.Errorf("pathsgraph: reach sweep: %w", err)
		}
	}
	// The requested length must be covered by both sweeps; a shallower
	// horizon or a dead frontier means no walk can span it.
	if rs.Empty() || rs.Forward[length] == nil || rs.Backward[length] == nil {
		return pg, nil
	}

	levels := pg.intersectLevels(rs)
	if levels == nil {
		return pg, nil
	}

	if err := pg.connectLevels(g, levels); err != nil {
		return nil, err
	}

	return pg, nil
}

// intersectLevels assembles the per-depth node sets. Depth i keeps the
// names forward-reachable in exactly i steps whose backward complement
// closes the walk at the requested target parity. Any empty
// intermediate level proves no complete walk exists, and by the
// level-set semantics that forces every other intermediate level empty
// too, so construction reports it with a nil return.
func (pg *PathsGraph) intersectLevels(rs *reach.Result) []map[Node]struct{} {
	levels := make([]map[Node]struct{}, pg.Length+1)
	levels[0] = map[Node]struct{}{pg.Source: {}}
	levels[pg.Length] = map[Node]struct{}{pg.Target: {}}

	for i := 1; i < pg.Length; i++ {
		lv := make(map[Node]struct{})
		for rn := range rs.Forward[i] {
			// A walk prefix at parity p closes to TargetParity exactly
			// when a suffix of parity p⊕TargetParity exists.
			if rs.Backward[pg.Length-i].Has(rn.Name, rn.Parity.Compose(pg.Target.Parity)) {
				lv[Node{Depth: i, Name: rn.Name, Parity: rn.Parity}] = struct{}{}
			}
		}
		if len(lv) == 0 {
			return nil
		}
		levels[i] = lv
	}

	return levels
}

// connectLevels adds every arc-backed edge between consecutive levels.
// Only pairs witnessed by an underlying arc of the sign matching the
// parity difference make it in, which is what keeps every edge on a
// complete walk.
func (pg *PathsGraph) connectLevels(g *core.Graph, levels []map[Node]struct{}) error {
	for i := 0; i < pg.Length; i++ {
		for u := range levels[i] {
			arcs, err := g.OutArcs(u.Name)
			if err != nil {
				return fmt.Errorf("pathsgraph: out-arcs of %q: %w", u.Name, err)
			}
			for _, a := range arcs {
				v := Node{Depth: i + 1, Name: a.To, Parity: u.Parity.Compose(a.Sign)}
				if _, ok := levels[i+1][v]; ok {
					pg.graph.AddEdge(u, v)
				}
			}
		}
	}

	return nil
}

// Graph exposes the leveled DAG. Callers must treat it as read-only;
// every downstream construction shares it without copying.
func (pg *PathsGraph) Graph() *DiGraph { return pg.graph }

// Underlying returns the graph the walks were extracted from. Weight
// lookups during sampling go through it.
func (pg *PathsGraph) Underlying() *core.Graph { return pg.src }

// Empty reports whether no walk of the requested length and parity exists.
func (pg *PathsGraph) Empty() bool { return pg.graph.Empty() }
