package converters

import (
	"fmt"
	"math"
	"sort"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/cfpath/core"
)

// ToGonum exports g as a gonum weighted digraph plus the id→name table
// that decodes it: vertex names are assigned dense int64 ids in sorted
// name order, so names[id] recovers the original vertex.
//
// Arc weights transfer verbatim (core.DefaultEdgeWeight on unweighted
// graphs). Negative arcs are ErrNegativeArc; self-loops are dropped.
//
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, []string, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	names := g.Vertices()
	ids := make(map[string]int64, len(names))
	dg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i, name := range names {
		ids[name] = int64(i)
		dg.AddNode(simple.Node(int64(i)))
	}

	for _, a := range g.Arcs() {
		if a.From == a.To {
			continue
		}
		if a.Sign == core.Negative {
			return nil, nil, fmt.Errorf("%w: %s→%s", ErrNegativeArc, a.From, a.To)
		}
		dg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(ids[a.From]),
			T: simple.Node(ids[a.To]),
			W: a.Weight,
		})
	}

	return dg, names, nil
}

// FromGonum imports a gonum weighted digraph into a fresh weighted
// core.Graph. names[id] must name every node; ids outside the table,
// empty names and duplicate names are ErrNameTable. All arcs come back
// Positive — gonum has no polarity to preserve.
//
// Complexity: O(V log V + E).
func FromGonum(src gograph.WeightedDirected, names []string) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}

	// Collect and order the node ids so insertion order is reproducible.
	var nodeIDs []int64
	it := src.Nodes()
	for it.Next() {
		nodeIDs = append(nodeIDs, it.Node().ID())
	}
	sort.Slice(nodeIDs, func(i, j int) bool { return nodeIDs[i] < nodeIDs[j] })

	seen := make(map[string]struct{}, len(nodeIDs))
	g := core.NewGraph(core.WithWeighted())
	for _, id := range nodeIDs {
		if id < 0 || id >= int64(len(names)) {
			return nil, fmt.Errorf("%w: node id %d has no name", ErrNameTable, id)
		}
		name := names[id]
		if name == "" {
			return nil, fmt.Errorf("%w: empty name for node id %d", ErrNameTable, id)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrNameTable, name)
		}
		seen[name] = struct{}{}
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("converters: add vertex %q: %w", name, err)
		}
	}

	for _, uid := range nodeIDs {
		// Order successors too; gonum iterators are unordered.
		var succ []int64
		to := src.From(uid)
		for to.Next() {
			succ = append(succ, to.Node().ID())
		}
		sort.Slice(succ, func(i, j int) bool { return succ[i] < succ[j] })

		for _, vid := range succ {
			if vid == uid {
				continue
			}
			w, ok := src.Weight(uid, vid)
			if !ok {
				continue
			}
			if err := g.AddEdge(names[uid], names[vid], core.WithWeight(w)); err != nil {
				return nil, fmt.Errorf("converters: add edge %s→%s: %w", names[uid], names[vid], err)
			}
		}
	}

	return g, nil
}
