package precfpg

import (
	"errors"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/reach"
)

// Sentinel errors for pre-CFPG construction and sampling.
var (
	// ErrGraphNil is returned if a nil graph or paths graph is passed.
	ErrGraphNil = errors.New("precfpg: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("precfpg: invalid option supplied")

	// ErrNoConvergence is returned when the pruning rounds hit the
	// WithMaxRounds cap before reaching a fixed point.
	ErrNoConvergence = errors.New("precfpg: pruning rounds did not converge")

	// ErrDeadEnd is returned when a sampled walk has no admissible
	// successor. Unreachable on a converged graph; kept as a guard.
	ErrDeadEnd = errors.New("precfpg: walk has no admissible successor")
)

// DefaultMaxRounds caps the pruning rounds when WithMaxRounds is not given.
const DefaultMaxRounds = 10

// Option configures construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when a constructor is invoked.
type Option func(*Options)

// Options holds the construction parameters.
type Options struct {
	// MaxRounds caps the pruning rounds before ErrNoConvergence.
	MaxRounds int

	// OnRound is called after each completed round with the round
	// number (1-based) and the node and edge counts of its result.
	OnRound func(round, nodes, edges int)

	// TargetParity is consumed by FromGraph when building the
	// intermediate paths graph; FromPathsGraph ignores it because the
	// input already fixed the parity.
	TargetParity core.Sign

	// Reach supplies precomputed reachability levels to FromGraph.
	Reach *reach.Result

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the default round cap, a no-op
// round hook, and Positive target parity.
func DefaultOptions() Options {
	return Options{
		MaxRounds:    DefaultMaxRounds,
		OnRound:      func(int, int, int) {},
		TargetParity: core.Positive,
		Reach:        nil,
		err:          nil,
	}
}

// WithMaxRounds caps the pruning rounds at n.
//
//	n > 0: allow up to n rounds
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxRounds = n
	}
}

// WithOnRound registers a callback to run after each pruning round.
func WithOnRound(fn func(round, nodes, edges int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// WithTargetParity requires complete walks to accumulate parity s.
// Consumed by FromGraph only.
func WithTargetParity(s core.Sign) Option {
	return func(o *Options) {
		if s > core.Negative {
			o.err = fmt.Errorf("%w: unknown parity %d", ErrOptionViolation, s)

			return
		}
		o.TargetParity = s
	}
}

// WithReachSets reuses previously computed reachability levels in
// FromGraph. A nil result is ignored.
func WithReachSets(r *reach.Result) Option {
	return func(o *Options) {
		if r != nil {
			o.Reach = r
		}
	}
}

// tagIndex freezes the canonical node order of the initialized graph
// and hands out dense bit positions for tag sets.
type tagIndex struct {
	order []pathsgraph.Node
	pos   map[pathsgraph.Node]int
}

// newTagIndex indexes nodes, which must already be in canonical order.
func newTagIndex(nodes []pathsgraph.Node) *tagIndex {
	ix := &tagIndex{order: nodes, pos: make(map[pathsgraph.Node]int, len(nodes))}
	for i, n := range nodes {
		ix.pos[n] = i
	}

	return ix
}

// zero returns an all-clear bit set over the universe.
func (ix *tagIndex) zero() bits.Bits { return bits.New(len(ix.order)) }

// nodes decodes a bit set back into canonically ordered nodes.
func (ix *tagIndex) nodes(b bits.Bits) []pathsgraph.Node {
	positions := b.Slice()
	out := make([]pathsgraph.Node, len(positions))
	for i, p := range positions {
		out[i] = ix.order[p]
	}

	return out
}
