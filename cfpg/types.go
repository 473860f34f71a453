package cfpg

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cfpath/core"
	"github.com/katalvlaran/cfpath/pathsgraph"
	"github.com/katalvlaran/cfpath/precfpg"
	"github.com/katalvlaran/cfpath/reach"
)

// Sentinel errors for CFPG construction.
var (
	// ErrGraphNil is returned if a nil graph or precursor is passed.
	ErrGraphNil = errors.New("cfpg: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cfpg: invalid option supplied")
)

// SplitNode is one history class of a pre-CFPG node: the raw leveled
// node plus a copy index separating incompatible histories.
type SplitNode struct {
	// Depth is the level, 0 (source) through path length (target).
	Depth int

	// Name is the vertex identifier in the underlying graph.
	Name string

	// Parity is the accumulated sign of every partial path reaching
	// this node. Always Positive on unsigned graphs.
	Parity core.Sign

	// Copy distinguishes history classes of the same raw node,
	// numbered from 0 in canonical signature order.
	Copy int
}

// Base strips the copy index, yielding the pre-CFPG node.
func (n SplitNode) Base() pathsgraph.Node {
	return pathsgraph.Node{Depth: n.Depth, Name: n.Name, Parity: n.Parity}
}

// String renders "(depth,name#copy)", with a parity mark on negative
// nodes: "(depth,name,-#copy)".
func (n SplitNode) String() string {
	if n.Parity == core.Negative {
		return fmt.Sprintf("(%d,%s,-#%d)", n.Depth, n.Name, n.Copy)
	}

	return fmt.Sprintf("(%d,%s#%d)", n.Depth, n.Name, n.Copy)
}

// Less orders split nodes by (Depth, Name, Parity, Copy).
func (n SplitNode) Less(m SplitNode) bool {
	if n.Depth != m.Depth {
		return n.Depth < m.Depth
	}
	if n.Name != m.Name {
		return n.Name < m.Name
	}
	if n.Parity != m.Parity {
		return n.Parity < m.Parity
	}

	return n.Copy < m.Copy
}

// SortNodes sorts in place into the canonical order.
func SortNodes(nodes []SplitNode) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Less(nodes[j]) })
}

// Option configures construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when a constructor is invoked.
type Option func(*Options)

// Options holds the construction parameters. TargetParity, Reach and
// MaxRounds only matter to the constructors that still have to build
// the earlier pipeline stages; FromPreCFPG ignores all three.
type Options struct {
	// MaxRounds caps the pre-CFPG pruning rounds.
	MaxRounds int

	// TargetParity is the required accumulated sign of complete paths.
	TargetParity core.Sign

	// Reach supplies precomputed reachability levels.
	Reach *reach.Result

	// OnLevel is called after each interior level of the backward
	// split sweep with the number of copies built there. Depths run
	// from length-1 down to 1; a zero count ends the sweep.
	OnLevel func(depth, copies int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options matching the pre-CFPG defaults.
func DefaultOptions() Options {
	return Options{
		MaxRounds:    precfpg.DefaultMaxRounds,
		TargetParity: core.Positive,
		Reach:        nil,
		OnLevel:      func(int, int) {},
		err:          nil,
	}
}

// WithMaxRounds caps the pre-CFPG pruning rounds at n.
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

// WithTargetParity requires complete paths to accumulate parity s.
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

// WithOnLevel registers a callback to run as each split level is
// finalized. A nil callback is ignored.
func WithOnLevel(fn func(depth, copies int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
