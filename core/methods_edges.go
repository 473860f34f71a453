// File: methods_edges.go
// Role: Arc lifecycle & queries: AddEdge/RemoveEdge/HasEdge/HasArc/Weight,
//       plus Arcs() enumeration and EdgeCount().
// Determinism:
//   - Arcs() returns arcs sorted by (From, To, Sign) asc.
// Concurrency:
//   - Mutations under muArc write lock.
//   - Read queries under muArc read lock.
// AI-HINT (file):
//   - Unweighted graphs MUST add arcs with the default weight (else ErrBadWeight).
//   - Negative arcs require WithSigned(); otherwise ErrBadSign.
//   - Re-adding an existing (from,to,sign) triple overwrites the stored weight.

package core

import (
	"math"
	"sort"
)

// AddEdge inserts the arc from→to, applying any per-arc options.
//
// The arc starts as {Sign: Positive, Weight: DefaultEdgeWeight}; options
// are applied left to right, then validated. Two arcs between the same
// endpoints coexist only when their signs differ; re-adding an existing
// (from, to, sign) triple overwrites the weight in place.
//
// Steps:
//  1. Validate names, loop policy.
//  2. Apply EdgeOptions; validate sign and weight against graph flags.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muArc, write the triple into both adjacency indexes.
//
// Complexity: O(1) amortized (nested-map updates).
// Concurrency:
//   - Validates/creates vertices outside muArc; adjacency under muArc.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops { // loop constraint
		return ErrLoopNotAllowed
	}

	// 2) Materialize the arc and apply per-arc options deterministically.
	a := Arc{From: from, To: to, Sign: Positive, Weight: DefaultEdgeWeight}
	var opt EdgeOption
	for _, opt = range opts {
		opt(&a)
	}
	if a.Sign > Negative || (a.Sign == Negative && !g.signed) {
		return ErrBadSign
	}
	if a.Weight <= 0 || math.IsInf(a.Weight, 1) || math.IsNaN(a.Weight) {
		return ErrBadWeight
	}
	if !g.weighted && a.Weight != DefaultEdgeWeight {
		return ErrBadWeight
	}

	// 3) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	// 4) Store in both directions under lock
	g.muArc.Lock()
	defer g.muArc.Unlock()

	if g.out[from][to] == nil {
		g.out[from][to] = make(map[Sign]float64, 1)
		g.in[to][from] = make(map[Sign]float64, 1)
	}
	if _, dup := g.out[from][to][a.Sign]; !dup {
		g.arcCount++
	}
	g.out[from][to][a.Sign] = a.Weight
	g.in[to][from][a.Sign] = a.Weight

	return nil
}

// RemoveEdge deletes the (from, to, sign) arc and its reverse-index mirror.
//
// Steps:
//  1. Lock muArc.
//  2. Lookup the triple, ErrEdgeNotFound if missing.
//  3. Delete from both indexes and prune empty buckets.
//
// Complexity: O(1).
// Concurrency: acquires muArc write lock only.
func (g *Graph) RemoveEdge(from, to string, sign Sign) error {
	// AI-HINT: Removing an absent arc returns ErrEdgeNotFound (no silent ignore).
	g.muArc.Lock()
	defer g.muArc.Unlock()

	signs := g.out[from][to]
	if _, ok := signs[sign]; !ok {
		return ErrEdgeNotFound
	}
	delete(signs, sign)
	delete(g.in[to][from], sign)
	if len(signs) == 0 {
		delete(g.out[from], to)
		delete(g.in[to], from)
	}
	g.arcCount--

	return nil
}

// HasEdge reports whether at least one arc from→to exists, of any sign.
// Complexity: O(1).
// Concurrency: read lock on muArc.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	return len(g.out[from][to]) > 0
}

// HasArc reports whether the exact (from, to, sign) triple exists.
// Complexity: O(1).
// Concurrency: read lock on muArc.
func (g *Graph) HasArc(from, to string, sign Sign) bool {
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	_, ok := g.out[from][to][sign]

	return ok
}

// Weight returns the stored weight of the (from, to, sign) arc, or
// ErrEdgeNotFound if no such arc exists.
// Complexity: O(1).
// Concurrency: read lock on muArc.
func (g *Graph) Weight(from, to string, sign Sign) (float64, error) {
	// AI-HINT: Use errors.Is(err, ErrEdgeNotFound) to gate fallbacks.
	g.muArc.RLock()
	defer g.muArc.RUnlock()
	w, ok := g.out[from][to][sign]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Arcs returns all arcs sorted by (From, To, Sign) ascending.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
// Concurrency: read lock on muArc.
func (g *Graph) Arcs() []Arc {
	// AI-HINT: Deterministic ordering; rely on it for golden tests.
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	out := make([]Arc, 0, g.arcCount)
	for from, tos := range g.out {
		for to, signs := range tos {
			for s, w := range signs {
				out = append(out, Arc{From: from, To: to, Sign: s, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].Sign < out[j].Sign
	})

	return out
}

// EdgeCount returns the total number of stored (from, to, sign) triples.
// Complexity: O(1).
// Concurrency: read lock on muArc.
func (g *Graph) EdgeCount() int {
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	return g.arcCount
}
