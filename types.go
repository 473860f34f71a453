package cfpath

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/precfpg"
	"github.com/katalvlaran/cfpath/reach"
)

// Sentinel errors for the top-level query API.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("cfpath: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cfpath: invalid option supplied")
)

// Option configures a query via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the query runs.
type Option func(*Options)

// Options holds the query parameters.
//
// A query either fixes the exact path length (WithLength) or sweeps
// every length from 1 up to a depth bound (WithMaxDepth, the default
// mode). All other knobs apply to both modes.
type Options struct {
	length    int
	lengthSet bool
	maxDepth  int

	cycleFree    bool
	uniform      bool
	targetParity core.Sign
	maxRounds    int
	rng          *rand.Rand
	reach        *reach.Result

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the depth-sweep mode at
// reach.DefaultMaxDepth, cycle-free extraction on, Positive target
// parity, and the default pruning-round cap.
func DefaultOptions() Options {
	return Options{
		maxDepth:     reach.DefaultMaxDepth,
		cycleFree:    true,
		targetParity: core.Positive,
		maxRounds:    precfpg.DefaultMaxRounds,
	}
}

// WithLength fixes the exact number of arcs of every returned path.
//
//	l >= 0: exact-length query (0 only pairs with source == target)
//	l < 0:  invalid option → ErrOptionViolation
func WithLength(l int) Option {
	return func(o *Options) {
		if l < 0 {
			o.err = fmt.Errorf("%w: Length must be non-negative (%d)", ErrOptionViolation, l)

			return
		}
		o.length = l
		o.lengthSet = true
	}
}

// WithMaxDepth bounds the depth sweep: lengths 1..d are aggregated.
// Ignored when WithLength is also given.
//
//	d > 0:  sweep lengths 1..d
//	d <= 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)

			return
		}
		o.maxDepth = d
	}
}

// WithCycleFree toggles cycle-free extraction. Disabled, queries run
// on the raw leveled graph instead: cheaper, but walks may revisit
// names.
func WithCycleFree(enabled bool) Option {
	return func(o *Options) { o.cycleFree = enabled }
}

// WithUniformPaths reweights cycle-free sampling so that every
// distinct path is equally likely, regardless of arc weights or graph
// shape. Ignored when WithCycleFree(false) is in effect.
func WithUniformPaths() Option {
	return func(o *Options) { o.uniform = true }
}

// WithTargetParity requires complete paths to accumulate parity s.
// Only meaningful on signed graphs.
func WithTargetParity(s core.Sign) Option {
	return func(o *Options) {
		if s > core.Negative {
			o.err = fmt.Errorf("%w: unknown parity %d", ErrOptionViolation, s)

			return
		}
		o.targetParity = s
	}
}

// WithMaxRounds caps the pre-CFPG pruning rounds at n.
//
//	n > 0:  allow up to n rounds
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxRounds must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.maxRounds = n
	}
}

// WithRand supplies the randomness source for sampling. Queries
// without one draw from a fresh deterministic generator.
//
//	r != nil: use r
//	r == nil: invalid option → ErrOptionViolation
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: Rand must not be nil", ErrOptionViolation)

			return
		}
		o.rng = r
	}
}

// WithReachSets reuses previously computed reachability levels. The
// levels must cover the deepest requested length. A nil result is
// ignored.
func WithReachSets(r *reach.Result) Option {
	return func(o *Options) {
		if r != nil {
			o.reach = r
		}
	}
}

// lengths lists the queried path lengths in ascending order.
func (o *Options) lengths() []int {
	if o.lengthSet {
		return []int{o.length}
	}
	out := make([]int, 0, o.maxDepth)
	for l := 1; l <= o.maxDepth; l++ {
		out = append(out, l)
	}

	return out
}

// reachDepth is the level-set depth needed to serve every queried length.
func (o *Options) reachDepth() int {
	if o.lengthSet {
		if o.length < 1 {
			return 1
		}

		return o.length
	}

	return o.maxDepth
}
