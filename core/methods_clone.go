// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.
// AI-HINT (file):
//   - CloneEmpty copies flags + vertices only; Clone deep-copies both
//     adjacency indexes. Clear() preserves flags but resets catalogs.

package core

// CloneEmpty returns a new Graph with identical configuration and
// vertices, but no arcs.
//
// Complexity: O(V) to copy vertices and initialize adjacency.
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muArc.RLock()
	defer g.muArc.RUnlock()

	// Copy configuration via options
	var opts []GraphOption
	if g.signed {
		opts = append(opts, WithSigned())
	}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)

	// Copy vertices and bootstrap their buckets
	var id string
	for id = range g.vertices {
		clone.vertices[id] = struct{}{}
		ensureAdjacency(clone, id)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, arcs,
// and both adjacency indexes.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	// AI-HINT: Deep copy; the clone shares no mutable state with the source.
	clone := g.CloneEmpty()

	g.muArc.RLock()
	defer g.muArc.RUnlock()

	for from, tos := range g.out {
		for to, signs := range tos {
			dup := make(map[Sign]float64, len(signs))
			for s, w := range signs {
				dup[s] = w
			}
			clone.out[from][to] = dup

			mirror := make(map[Sign]float64, len(signs))
			for s, w := range signs {
				mirror[s] = w
			}
			clone.in[to][from] = mirror
			clone.arcCount += len(signs)
		}
	}

	return clone
}

// Clear removes all vertices and arcs but keeps configuration flags.
//
// Complexity: O(1) (old maps are released to the garbage collector).
func (g *Graph) Clear() {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muArc.Lock()
	defer g.muArc.Unlock()

	g.vertices = make(map[string]struct{})
	g.out = make(map[string]map[string]map[Sign]float64)
	g.in = make(map[string]map[string]map[Sign]float64)
	g.arcCount = 0
}
