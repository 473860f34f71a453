// File: methods_adjacent.go
// Role: Neighborhood APIs (Successors, Predecessors, OutArcs, InArcs) and
//       adjacency helpers.
// Determinism:
//   - Successors()/Predecessors() return unique names sorted lex asc.
//   - OutArcs()/InArcs() sort by (To, Sign) resp. (From, Sign) asc.
// Concurrency:
//   - Read operations hold muVert then muArc read locks.
//   - Helpers are called only under muArc write locks by mutating code.

package core

import "sort"

// Successors returns the unique vertex names reachable from id by one
// arc, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Successors(id string) ([]string, error) {
	return g.neighborNames(id, func() map[string]map[Sign]float64 { return g.out[id] })
}

// Predecessors returns the unique vertex names with an arc into id,
// sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the in-degree of id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.neighborNames(id, func() map[string]map[Sign]float64 { return g.in[id] })
}

// OutArcs returns every arc leaving id, sorted by (To, Sign) ascending.
//
// Errors: as Successors.
// Complexity: O(d log d).
func (g *Graph) OutArcs(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var arcs []Arc
	for to, signs := range g.out[id] {
		for s, w := range signs {
			arcs = append(arcs, Arc{From: id, To: to, Sign: s, Weight: w})
		}
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].To != arcs[j].To {
			return arcs[i].To < arcs[j].To
		}

		return arcs[i].Sign < arcs[j].Sign
	})

	return arcs, nil
}

// InArcs returns every arc entering id, sorted by (From, Sign) ascending.
//
// Errors: as Predecessors.
// Complexity: O(d log d).
func (g *Graph) InArcs(id string) ([]Arc, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var arcs []Arc
	for from, signs := range g.in[id] {
		for s, w := range signs {
			arcs = append(arcs, Arc{From: from, To: id, Sign: s, Weight: w})
		}
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].From != arcs[j].From {
			return arcs[i].From < arcs[j].From
		}

		return arcs[i].Sign < arcs[j].Sign
	})

	return arcs, nil
}

// neighborNames collects, validates, and sorts the keys of one adjacency
// bucket. The bucket accessor runs under both read locks.
func (g *Graph) neighborNames(id string, bucket func() map[string]map[Sign]float64) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Lock order matches mutators (muVert -> muArc) so a vertex cannot
	// disappear between validation and the bucket snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	m := bucket()
	names := make([]string, 0, len(m))
	var n string
	for n = range m {
		names = append(names, n)
	}
	sort.Strings(names)

	return names, nil
}

// ensureAdjacency guarantees that out[id] and in[id] are initialized.
// Must be called only under muArc write lock by mutating code paths.
func ensureAdjacency(g *Graph, id string) {
	if g.out[id] == nil {
		g.out[id] = make(map[string]map[Sign]float64)
	}
	if g.in[id] == nil {
		g.in[id] = make(map[string]map[Sign]float64)
	}
}
