package reach

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cfpath/core"
)

// Sentinel errors for reachability computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("reach: source vertex not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("reach: target vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")
)

// DefaultMaxDepth bounds the leveled expansion when WithMaxDepth is not given.
const DefaultMaxDepth = 10

// Direction distinguishes the two sweeps of one computation.
type Direction uint8

const (
	// Forward expands along out-arcs, away from the source.
	Forward Direction = iota

	// Backward expands along in-arcs, away from the target.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}

	return "forward"
}

// Node is one level-set entry: a vertex name together with the
// cumulative parity of the walk that reached it.
type Node struct {
	Name   string
	Parity core.Sign
}

// Set is one reachability level: the distinct (name, parity) pairs at
// a fixed walk depth.
type Set map[Node]struct{}

// Has reports whether the exact (name, parity) pair is in the level.
func (s Set) Has(name string, parity core.Sign) bool {
	_, ok := s[Node{Name: name, Parity: parity}]

	return ok
}

// HasName reports whether the name is in the level at either parity.
func (s Set) HasName(name string) bool {
	return s.Has(name, core.Positive) || s.Has(name, core.Negative)
}

// Names returns the distinct vertex names of the level, sorted ascending.
func (s Set) Names() []string {
	seen := make(map[string]struct{}, len(s))
	for n := range s {
		seen[n.Name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Result holds both families of level sets. Depth 0 maps to the
// endpoint itself at Positive parity; deeper levels stop as soon as a
// sweep produces nothing new to stand on, or at the configured horizon.
//
// When either endpoint is unreachable from the other within the
// horizon, both maps are left empty.
type Result struct {
	Forward  map[int]Set
	Backward map[int]Set
}

// Empty reports whether the connectivity check failed and the result
// carries no usable levels.
func (r *Result) Empty() bool {
	return len(r.Forward) == 0 || len(r.Backward) == 0
}

// ForwardDepth returns the deepest recorded forward level, or -1 when empty.
func (r *Result) ForwardDepth() int { return maxDepthKey(r.Forward) }

// BackwardDepth returns the deepest recorded backward level, or -1 when empty.
func (r *Result) BackwardDepth() int { return maxDepthKey(r.Backward) }

func maxDepthKey(levels map[int]Set) int {
	depth := -1
	for d := range levels {
		if d > depth {
			depth = d
		}
	}

	return depth
}

// Option configures reachability computation via functional arguments.
// If an Option is invalid (e.g. non-positive depth), it is recorded
// internally and surfaced as ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize the computation.
type Options struct {
	// MaxDepth bounds both sweeps; levels beyond it are never explored.
	// Must be positive: walks may revisit vertices, so an unbounded
	// sweep of a cyclic graph would not terminate.
	MaxDepth int

	// OnLevel is called after each non-empty level beyond depth 0 is
	// finalized, with the sweep direction, the depth, and the number of
	// (name, parity) entries at that depth.
	OnLevel func(dir Direction, depth, size int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - MaxDepth == DefaultMaxDepth
//   - no-op OnLevel hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
		OnLevel:  func(Direction, int, int) {},
		err:      nil,
	}
}

// WithMaxDepth bounds the leveled expansion at depth d.
//
//	d > 0: explore levels 1..d
//	d <= 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithOnLevel registers a callback to run as each level is finalized.
func WithOnLevel(fn func(dir Direction, depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
