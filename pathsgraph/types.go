package pathsgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/reach"
)

// Sentinel errors for paths-graph construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathsgraph: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("pathsgraph: source vertex not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("pathsgraph: target vertex not found")

	// ErrBadLength is returned when a negative path length is requested.
	ErrBadLength = errors.New("pathsgraph: negative path length")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathsgraph: invalid option supplied")
)

// Option configures construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when FromGraph is invoked.
type Option func(*Options)

// Options holds the construction parameters.
type Options struct {
	// TargetParity is the required cumulative parity of complete walks:
	// Positive selects walks crossing an even number of Negative arcs,
	// Negative an odd number. Negative requires a signed graph.
	TargetParity core.Sign

	// Reach supplies precomputed reachability levels for the same
	// (graph, source, target) triple, covering at least the requested
	// length. When nil, FromGraph computes its own.
	Reach *reach.Result

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options selecting Positive target parity and
// internally computed reach sets.
func DefaultOptions() Options {
	return Options{TargetParity: core.Positive, Reach: nil, err: nil}
}

// WithTargetParity requires complete walks to accumulate parity s.
func WithTargetParity(s core.Sign) Option {
	return func(o *Options) {
		if s > core.Negative {
			o.err = fmt.Errorf("%w: unknown parity %d", ErrOptionViolation, s)

			return
		}
		o.TargetParity = s
	}
}

// WithReachSets reuses previously computed reachability levels instead
// of running the bidirectional sweep again. A nil result is ignored.
func WithReachSets(r *reach.Result) Option {
	return func(o *Options) {
		if r != nil {
			o.Reach = r
		}
	}
}
