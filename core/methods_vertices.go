// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muArc (to keep adjacency invariants consistent).
//
// AI-Hints (file):
//   - Vertices() is a stable enumeration surface; rely on it for reproducible outputs.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty name (ErrEmptyVertexID).
//  2. Under muVert write lock, register the name if absent.
//  3. Under muArc write lock, bootstrap adjacency buckets so arc methods
//     can rely on non-nil maps.
//
// Lock order is muVert -> muArc, matching every other mutator.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// AI-HINT: Empty name returns ErrEmptyVertexID. Idempotent if vertex exists.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = struct{}{}

	g.muArc.Lock()
	ensureAdjacency(g, id)
	g.muArc.Unlock()

	return nil
}

// HasVertex reports whether the vertex exists (empty name ⇒ false).
// Complexity: O(1).
// Concurrency: read lock on muVert.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident arcs in both directions.
//
// Steps:
//  1. Validate non-empty name (ErrEmptyVertexID).
//  2. Acquire muVert and muArc write locks for an atomic topology update.
//  3. Verify presence (ErrVertexNotFound).
//  4. Unlink every out-arc and in-arc touching the vertex, adjusting arcCount.
//  5. Drop the vertex record and its adjacency buckets.
//
// Complexity: O(deg(v)) plus bucket cleanup.
// Concurrency: both write locks held; readers blocked until completion.
func (g *Graph) RemoveVertex(id string) error {
	// AI-HINT: Removes all incident arcs deterministically; missing vertex → ErrVertexNotFound.
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muArc.Lock()
	defer g.muArc.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Unlink arcs out of id: mirror entries live in in[to][id].
	for to, signs := range g.out[id] {
		g.arcCount -= len(signs)
		delete(g.in[to], id)
	}
	// Unlink arcs into id: mirror entries live in out[from][id].
	// Self-loop arcs were already counted in the out pass.
	for from, signs := range g.in[id] {
		if from != id {
			g.arcCount -= len(signs)
		}
		delete(g.out[from], id)
	}

	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)

	return nil
}

// Vertices returns all vertex names in lexicographic ascending order.
// Complexity: O(V log V).
// Concurrency: read lock on muVert.
func (g *Graph) Vertices() []string {
	// AI-HINT: Deterministic ordering by name asc; rely on it for stable diffs.
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
// Concurrency: read lock on muVert.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
