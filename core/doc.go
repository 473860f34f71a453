// Package core provides a thread-safe in-memory directed graph whose
// arcs carry an optional polarity and an optional positive weight.
//
// The Graph G = (V,E) is the input model for every path-extraction
// stage in this module:
//
//   - Signed vs. unsigned arcs (WithSigned + WithSign)
//   - Weighted vs. unweighted arcs (WithWeighted + WithWeight)
//   - Self-loops (WithLoops)
//   - Constant-time arc operations via nested maps:
//     out[from][to][sign] = weight, mirrored as in[to][from][sign] = weight
//   - Separate sync.RWMutex for vertices (muVert) and arcs (muArc)
//     to minimize lock contention under concurrency
//
// Why use core.Graph?
//
//   - Single type, composable flags — no explosion of separate graph types.
//   - Deterministic iteration — Vertices(), Arcs(), Successors(),
//     Predecessors() all return sorted results.
//   - Dual adjacency — predecessor queries cost the same as successor
//     queries, which the backward reachability passes rely on.
//   - Identity by content — an arc is the triple (From, To, Sign); adding
//     the same triple again overwrites its weight, while opposite-sign
//     arcs between the same endpoints coexist as distinct candidates.
//   - Clone support — CloneEmpty (vertices+flags), Clone (deep copy).
//
// Configuration Options (GraphOption):
//
//	– WithSigned()
//	    Permits Negative arcs; without it AddEdge(..., WithSign(Negative))
//	    returns ErrBadSign.
//
//	– WithWeighted()
//	    Permits non-default weights; otherwise AddEdge(..., WithWeight(w)),
//	    w ≠ 1, returns ErrBadWeight. Weights must be positive and finite.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) →
//	    ErrLoopNotAllowed.
//
// EdgeOptions:
//
//	– WithSign(s Sign)      polarity of this arc (signed graphs only).
//	– WithWeight(w float64) sampling weight of this arc (weighted graphs only).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v))
//
//	// Arc lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) error // O(1)
//	RemoveEdge(from, to string, sign Sign) error       // O(1)
//	HasEdge(from, to string) bool                      // O(1)
//	HasArc(from, to string, sign Sign) bool            // O(1)
//	Weight(from, to string, sign Sign) (float64, error)
//
//	// Enumeration (deterministic order)
//	Vertices() []string
//	Arcs() []Arc
//	Successors(id string) ([]string, error)
//	Predecessors(id string) ([]string, error)
//	OutArcs(id string) ([]Arc, error)
//	InArcs(id string) ([]Arc, error)
//
// Quick example:
//
//	g := core.NewSignedGraph(core.WithWeighted())
//	_ = g.AddEdge("A", "B", core.WithWeight(3))
//	_ = g.AddEdge("B", "C", core.WithSign(core.Negative))
//	succ, _ := g.Successors("A") // ["B"]
//
// See reach, pathsgraph, precfpg, and cfpg for the algorithm layers that
// consume this type.
package core
