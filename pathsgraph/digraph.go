package pathsgraph

import "sort"

// Edge is one directed connection between leveled nodes.
type Edge struct {
	From Node
	To   Node
}

// DiGraph is a small directed graph over leveled nodes, with both
// adjacency directions indexed. It is the working representation shared
// by the whole extraction pipeline: paths graphs, cone subgraphs, and
// the pruned fixed-point graphs all use it.
//
// DiGraph is not safe for concurrent mutation. The pipeline treats
// every DiGraph as frozen once its construction step returns, which is
// also what makes the aliasing behavior of Prune safe.
type DiGraph struct {
	out map[Node]map[Node]struct{}
	in  map[Node]map[Node]struct{}

	arcCount int
}

// NewDiGraph returns an empty graph.
func NewDiGraph() *DiGraph {
	return &DiGraph{
		out: make(map[Node]map[Node]struct{}),
		in:  make(map[Node]map[Node]struct{}),
	}
}

// AddNode inserts n if absent. Isolated nodes are legal; the trivial
// zero-length paths graph is a single node with no edges.
func (d *DiGraph) AddNode(n Node) {
	if _, ok := d.out[n]; ok {
		return
	}
	d.out[n] = make(map[Node]struct{})
	d.in[n] = make(map[Node]struct{})
}

// AddEdge inserts the edge u→v, materializing endpoints as needed.
// Re-adding an existing edge is a no-op.
func (d *DiGraph) AddEdge(u, v Node) {
	d.AddNode(u)
	d.AddNode(v)
	if _, dup := d.out[u][v]; dup {
		return
	}
	d.out[u][v] = struct{}{}
	d.in[v][u] = struct{}{}
	d.arcCount++
}

// RemoveNode deletes n and every edge incident to it.
func (d *DiGraph) RemoveNode(n Node) {
	if _, ok := d.out[n]; !ok {
		return
	}
	for v := range d.out[n] {
		delete(d.in[v], n)
		d.arcCount--
	}
	for u := range d.in[n] {
		delete(d.out[u], n)
		d.arcCount--
	}
	delete(d.out, n)
	delete(d.in, n)
}

// HasNode reports whether n is present.
func (d *DiGraph) HasNode(n Node) bool {
	_, ok := d.out[n]

	return ok
}

// HasEdge reports whether the edge u→v is present.
func (d *DiGraph) HasEdge(u, v Node) bool {
	_, ok := d.out[u][v]

	return ok
}

// NodeCount returns the number of nodes.
func (d *DiGraph) NodeCount() int { return len(d.out) }

// EdgeCount returns the number of edges.
func (d *DiGraph) EdgeCount() int { return d.arcCount }

// Empty reports whether the graph has no nodes at all.
func (d *DiGraph) Empty() bool { return len(d.out) == 0 }

// OutDegree returns the number of successors of n.
func (d *DiGraph) OutDegree(n Node) int { return len(d.out[n]) }

// InDegree returns the number of predecessors of n.
func (d *DiGraph) InDegree(n Node) int { return len(d.in[n]) }

// Nodes returns all nodes in canonical order.
func (d *DiGraph) Nodes() []Node {
	nodes := make([]Node, 0, len(d.out))
	for n := range d.out {
		nodes = append(nodes, n)
	}
	SortNodes(nodes)

	return nodes
}

// NodesAtDepth returns the nodes standing at one level, in canonical order.
func (d *DiGraph) NodesAtDepth(depth int) []Node {
	var nodes []Node
	for n := range d.out {
		if n.Depth == depth {
			nodes = append(nodes, n)
		}
	}
	SortNodes(nodes)

	return nodes
}

// Successors returns the out-neighbors of n in canonical order.
func (d *DiGraph) Successors(n Node) []Node {
	return sortedKeys(d.out[n])
}

// Predecessors returns the in-neighbors of n in canonical order.
func (d *DiGraph) Predecessors(n Node) []Node {
	return sortedKeys(d.in[n])
}

// Edges returns all edges sorted by (From, To) ascending.
func (d *DiGraph) Edges() []Edge {
	edges := make([]Edge, 0, d.arcCount)
	for u, tos := range d.out {
		for v := range tos {
			edges = append(edges, Edge{From: u, To: v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From.Less(edges[j].From)
		}

		return edges[i].To.Less(edges[j].To)
	})

	return edges
}

// Clone returns a deep copy.
func (d *DiGraph) Clone() *DiGraph {
	c := NewDiGraph()
	c.Union(d)

	return c
}

// Union merges every node and edge of other into d.
func (d *DiGraph) Union(other *DiGraph) {
	for n := range other.out {
		d.AddNode(n)
	}
	for u, tos := range other.out {
		for v := range tos {
			d.AddEdge(u, v)
		}
	}
}

// Equal reports whether both graphs hold exactly the same node and
// edge sets. This is the fixed-point test of the pruning rounds.
func (d *DiGraph) Equal(other *DiGraph) bool {
	if len(d.out) != len(other.out) || d.arcCount != other.arcCount {
		return false
	}
	for n := range d.out {
		if !other.HasNode(n) {
			return false
		}
	}
	for u, tos := range d.out {
		for v := range tos {
			if !other.HasEdge(u, v) {
				return false
			}
		}
	}

	return true
}

// Prune removes the listed nodes, then cascades: any node left without
// successors (other than keepSink) or without predecessors (other than
// keepSource) is removed too, until the graph is stable. The two kept
// endpoints are exempt from exactly one rule each — keepSource may be
// predecessor-free, keepSink successor-free — so a surviving graph is
// exactly the part of d lying on keepSource→keepSink routes that avoid
// the removed nodes.
//
// The receiver is never mutated. When nothing has to be removed the
// receiver itself is returned; otherwise the result is a fresh copy.
// Listed nodes equal to keepSource or keepSink are ignored.
func (d *DiGraph) Prune(removals []Node, keepSource, keepSink Node) *DiGraph {
	doomed := make([]Node, 0, len(removals))
	for _, n := range removals {
		if n != keepSource && n != keepSink && d.HasNode(n) {
			doomed = append(doomed, n)
		}
	}
	if len(doomed) == 0 && !d.hasDangling(keepSource, keepSink) {
		return d
	}

	p := d.Clone()
	queue := make([]Node, 0, len(doomed)+p.NodeCount())
	queue = append(queue, doomed...)
	queue = append(queue, p.Nodes()...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if !p.HasNode(n) {
			continue
		}
		explicit := false
		for _, m := range doomed {
			if m == n {
				explicit = true

				break
			}
		}
		if !explicit && !p.dangling(n, keepSource, keepSink) {
			continue
		}
		// Re-check neighbors once this node is gone.
		for u := range p.in[n] {
			queue = append(queue, u)
		}
		for v := range p.out[n] {
			queue = append(queue, v)
		}
		p.RemoveNode(n)
	}

	return p
}

// dangling reports whether n violates the survival rules of Prune.
func (d *DiGraph) dangling(n Node, keepSource, keepSink Node) bool {
	if n != keepSink && len(d.out[n]) == 0 {
		return true
	}

	return n != keepSource && len(d.in[n]) == 0
}

// hasDangling reports whether any node would fall to the cascade alone.
func (d *DiGraph) hasDangling(keepSource, keepSink Node) bool {
	for n := range d.out {
		if d.dangling(n, keepSource, keepSink) {
			return true
		}
	}

	return false
}

// sortedKeys copies one adjacency bucket into canonical order.
func sortedKeys(bucket map[Node]struct{}) []Node {
	nodes := make([]Node, 0, len(bucket))
	for n := range bucket {
		nodes = append(nodes, n)
	}
	SortNodes(nodes)

	return nodes
}
