package converters

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is handed to any adapter.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNegativeArc is returned by ToGonum when the source graph carries a
	// Negative arc; gonum edges have no polarity slot.
	ErrNegativeArc = errors.New("converters: negative arc not representable")

	// ErrParallelArcs is returned by ToDominik when both signs of the same
	// (from,to) pair exist; dominikbraun stores one edge per pair.
	ErrParallelArcs = errors.New("converters: opposite-sign parallel arcs not representable")

	// ErrUndirected is returned by FromDominik when the source graph was
	// built without graph.Directed().
	ErrUndirected = errors.New("converters: undirected graph not supported")

	// ErrNameTable is returned by FromGonum when the id→name table does not
	// cover every node, or maps two ids to one name.
	ErrNameTable = errors.New("converters: bad name table")

	// ErrSignAttribute is returned by FromDominik on an unrecognized "sign"
	// edge attribute value.
	ErrSignAttribute = errors.New("converters: bad sign attribute")
)

// SignAttribute is the dominikbraun edge attribute key carrying arc polarity
// ("+" or "-", core.Sign.String() values).
const SignAttribute = "sign"
