// Package core defines the central Graph type: a signed, weighted,
// directed multigraph keyed by string vertex names.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muArc for arcs and adjacency), so graphs can be mutated and
// queried across goroutines with minimal contention.
//
// This file declares Sign, Arc, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex name is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested arc does not exist.
//	ErrBadWeight      - weight is not a positive finite number, or a
//	                    non-default weight was given to an unweighted graph.
//	ErrBadSign        - sign is out of range, or Negative on an unsigned graph.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex name was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent arc.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-positive or non-finite weight, or a
	// non-default weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrBadSign indicates an out-of-range sign, or a Negative sign
	// provided to a graph constructed without WithSigned.
	ErrBadSign = errors.New("core: bad edge sign")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// DefaultEdgeWeight is the weight assigned to arcs added without WithWeight.
const DefaultEdgeWeight float64 = 1

// Sign is the polarity carried by an arc: Positive (activation) or
// Negative (inhibition). Polarities compose along a walk by XOR, so a
// walk is net-Positive exactly when it crosses an even number of
// Negative arcs.
type Sign uint8

const (
	// Positive is the identity polarity.
	Positive Sign = 0

	// Negative flips the cumulative polarity of a walk.
	Negative Sign = 1
)

// Compose returns the polarity of a walk that first accumulates s and
// then crosses an arc of polarity t.
func (s Sign) Compose(t Sign) Sign { return s ^ t }

// Opposite returns the flipped polarity.
func (s Sign) Opposite() Sign { return s ^ 1 }

// String returns "+" for Positive and "-" for Negative.
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}

	return "+"
}

// Arc is one directed connection From→To with its polarity and weight.
//
// The triple (From, To, Sign) identifies an arc within its Graph: two
// arcs between the same endpoints may coexist when their signs differ,
// and re-adding an existing triple overwrites the stored weight.
type Arc struct {
	// From is the source vertex name.
	From string

	// To is the destination vertex name.
	To string

	// Sign is the arc polarity. Always Positive in unsigned graphs.
	Sign Sign

	// Weight is the sampling weight of the arc; positive, default 1.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithSigned permits Negative arcs in the Graph.
func WithSigned() GraphOption {
	return func(g *Graph) { g.signed = true }
}

// WithWeighted allows non-default arc weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual arcs when added.
type EdgeOption func(*Arc)

// WithSign sets the polarity of this arc. Requires WithSigned on the Graph
// when s is Negative.
func WithSign(s Sign) EdgeOption {
	return func(a *Arc) { a.Sign = s }
}

// WithWeight sets the weight of this arc. Requires WithWeighted on the
// Graph for any value other than DefaultEdgeWeight.
func WithWeight(w float64) EdgeOption {
	return func(a *Arc) { a.Weight = w }
}

// Graph is the core in-memory directed graph data structure.
//
// Arcs are stored twice, as out[from][to][sign]=weight and as
// in[to][from][sign]=weight, so successor and predecessor queries are
// both O(1) bucket lookups. muVert protects the vertex catalog; muArc
// protects both adjacency indexes and the arc counter.
type Graph struct {
	muVert sync.RWMutex // guards vertices
	muArc  sync.RWMutex // guards out, in, arcCount

	// Configuration flags
	signed     bool // allow Negative arcs
	weighted   bool // allow non-default weights
	allowLoops bool // allow self-loops

	// Storage
	vertices map[string]struct{}                 // vertex catalog
	out      map[string]map[string]map[Sign]float64 // from → to → sign → weight
	in       map[string]map[string]map[Sign]float64 // to → from → sign → weight
	arcCount int                                 // number of stored (from,to,sign) triples
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unsigned, unweighted, and rejects self-loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]map[Sign]float64),
		in:       make(map[string]map[string]map[Sign]float64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
