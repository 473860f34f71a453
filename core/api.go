// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Use NewSignedGraph(...) when arcs carry activation/inhibition polarity.
//   - Stats() is an O(E) snapshot; rely on it for quick admissions/diagnostics.

package core

// NewSignedGraph creates a new Graph that permits Negative arcs, while
// preserving deterministic option application order.
//
// Implementation:
//   - Stage 1: Prepend WithSigned() to the caller-provided options.
//   - Stage 2: Delegate to NewGraph(...) to allocate and apply options.
//
// Behavior highlights:
//   - Enables WithSign(Negative) on AddEdge; without signed mode this is rejected.
//   - Does not mutate the caller's opts slice (no hidden side-effects).
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)) for the composed options slice.
func NewSignedGraph(opts ...GraphOption) *Graph {
	// Allocate a fresh slice to avoid mutating the caller's slice.
	signed := make([]GraphOption, 0, len(opts)+1)
	signed = append(signed, WithSigned())
	signed = append(signed, opts...)

	return NewGraph(signed...)
}

// Signed reports the construction-time "signed" capability flag.
// If false, AddEdge rejects Negative arcs with ErrBadSign.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert (flags are immutable after construction).
func (g *Graph) Signed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.signed
}

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-default weights with ErrBadWeight.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert.
func (g *Graph) Weighted() bool {
	// AI-HINT: Gate weighted algorithms by g.Weighted() before reading Arc.Weight.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on muVert.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// GraphStats is a read-only snapshot of configuration flags and catalog
// sizes, with arcs classified by polarity.
type GraphStats struct {
	Signed      bool // Negative arcs permitted
	Weighted    bool // non-default weights permitted
	AllowsLoops bool // self-loops permitted

	VertexCount      int // size of the vertex catalog
	ArcCount         int // number of stored (from,to,sign) triples
	PositiveArcCount int // arcs with Sign == Positive
	NegativeArcCount int // arcs with Sign == Negative
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muArc.RLock, snapshot arc counts, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously (reduces contention).
//   - Returns a compact value object suitable for diagnostics and admission checks.
//
// Complexity:
//   - Time O(E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	// First phase: capture configuration flags and vertex count under muVert.
	g.muVert.RLock()
	stats := GraphStats{
		Signed:      g.signed,
		Weighted:    g.weighted,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	// Second phase: classify arcs under muArc.
	g.muArc.RLock()
	stats.ArcCount = g.arcCount
	for _, tos := range g.out {
		for _, signs := range tos {
			for s := range signs {
				if s == Negative {
					stats.NegativeArcCount++
				} else {
					stats.PositiveArcCount++
				}
			}
		}
	}
	g.muArc.RUnlock()

	return &stats
}
