package converters

import (
	"fmt"
	"math"
	"sort"

	dgraph "github.com/dominikbraun/graph"

	"github.com/katalvlaran/cfpath/core"
)

// ToDominik exports g as a directed, weighted dominikbraun graph keyed by
// vertex name. Arc polarity rides the "sign" edge attribute; weights are
// rounded to the nearest integer and clamped to ≥ 1 (dominikbraun weights
// are ints). Self-loops are dropped; opposite-sign parallel arcs are
// ErrParallelArcs. Complexity: O(V log V + E).
func ToDominik(g *core.Graph) (dgraph.Graph[string, string], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dg := dgraph.New(dgraph.StringHash, dgraph.Directed(), dgraph.Weighted())
	for _, name := range g.Vertices() {
		if err := dg.AddVertex(name); err != nil {
			return nil, fmt.Errorf("converters: add vertex %q: %w", name, err)
		}
	}

	arcs := g.Arcs()
	for i, a := range arcs {
		if a.From == a.To {
			continue
		}
		// Arcs() is sorted by (from,to,sign): a second sign of the same
		// pair sits right behind the first.
		if i > 0 && arcs[i-1].From == a.From && arcs[i-1].To == a.To {
			return nil, fmt.Errorf("%w: %s→%s", ErrParallelArcs, a.From, a.To)
		}
		weight := int(math.Round(a.Weight))
		if weight < 1 {
			weight = 1
		}
		err := dg.AddEdge(a.From, a.To,
			dgraph.EdgeWeight(weight),
			dgraph.EdgeAttribute(SignAttribute, a.Sign.String()))
		if err != nil {
			return nil, fmt.Errorf("converters: add edge %s→%s: %w", a.From, a.To, err)
		}
	}

	return dg, nil
}

// FromDominik imports a directed dominikbraun graph into a fresh signed,
// weighted core.Graph. The "sign" edge attribute decodes arc polarity
// ("+", "-", or absent for Positive; anything else is ErrSignAttribute).
// Non-positive edge weights fall back to core.DefaultEdgeWeight; self-loops
// are dropped. Undirected sources are ErrUndirected.
// Complexity: O(V log V + E).
func FromDominik(src dgraph.Graph[string, string]) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	if !src.Traits().IsDirected {
		return nil, ErrUndirected
	}

	adj, err := src.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("converters: adjacency map: %w", err)
	}

	// Deterministic insertion: sorted sources, then sorted targets.
	sources := make([]string, 0, len(adj))
	for name := range adj {
		sources = append(sources, name)
	}
	sort.Strings(sources)

	g := core.NewGraph(core.WithWeighted(), core.WithSigned())
	for _, name := range sources {
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("converters: add vertex %q: %w", name, err)
		}
	}

	for _, from := range sources {
		targets := make([]string, 0, len(adj[from]))
		for name := range adj[from] {
			targets = append(targets, name)
		}
		sort.Strings(targets)

		for _, to := range targets {
			if from == to {
				continue
			}
			e := adj[from][to]

			weight := float64(e.Properties.Weight)
			if weight <= 0 {
				weight = core.DefaultEdgeWeight
			}

			sign := core.Positive
			if v, ok := e.Properties.Attributes[SignAttribute]; ok {
				switch v {
				case core.Positive.String():
					sign = core.Positive
				case core.Negative.String():
					sign = core.Negative
				default:
					return nil, fmt.Errorf("%w: %q on %s→%s", ErrSignAttribute, v, from, to)
				}
			}

			if err := g.AddEdge(from, to, core.WithWeight(weight), core.WithSign(sign)); err != nil {
				return nil, fmt.Errorf("converters: add edge %s→%s: %w", from, to, err)
			}
		}
	}

	return g, nil
}
