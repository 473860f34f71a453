package reach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// ErrNeighbors is returned when fetching arcs from the graph fails.
var ErrNeighbors = errors.New("reach: arc iteration error")

// leveler encapsulates the per-computation state shared by both sweeps.
type leveler struct {
	graph *core.Graph
	opts  Options
}

// Compute runs the bidirectional leveled expansion on g between source
// and target, applying any number of functional Options.
//
// Returns ErrGraphNil, ErrSourceNotFound or ErrTargetNotFound for
// invalid input and ErrOptionViolation for bad options. An unreachable
// pair is not an error: it yields a Result with both maps empty.
func Compute(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasVertex(target) {
		return nil, ErrTargetNotFound
	}

	l := &leveler{graph: g, opts: o}

	fwd, fwdSeen, err := l.expand(Forward, source)
	if err != nil {
		return nil, err
	}
	bwd, bwdSeen, err := l.expand(Backward, target)
	if err != nil {
		return nil, err
	}

	// Connectivity gate: the two sweeps must meet by name. Parity is
	// deliberately ignored here; a target seen only through an odd
	// number of Negative arcs is still connected, and level consumers
	// apply their own parity constraints.
	if !seenByName(fwdSeen, target) || !seenByName(bwdSeen, source) {
		return &Result{Forward: map[int]Set{}, Backward: map[int]Set{}}, nil
	}

	return &Result{Forward: fwd, Backward: bwd}, nil
}

// expand produces the level family of one sweep rooted at root.
// Level d is derived from level d-1 alone: every arc leaving (Forward)
// or entering (Backward) a member contributes its far endpoint with the
// composed parity. The sweep stops at the first empty level or at the
// configured horizon, whichever comes first.
func (l *leveler) expand(dir Direction, root string) (map[int]Set, Set, error) {
	frontier := Set{Node{Name: root, Parity: core.Positive}: {}}
	levels := map[int]Set{0: frontier}
	seen := Set{Node{Name: root, Parity: core.Positive}: {}}

	for d := 1; d <= l.opts.MaxDepth; d++ {
		next := make(Set)
		for n := range frontier {
			arcs, err := l.arcs(dir, n.Name)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrNeighbors, err)
			}
			for _, a := range arcs {
				m := Node{Name: far(dir, a), Parity: n.Parity.Compose(a.Sign)}
				next[m] = struct{}{}
			}
		}
		if len(next) == 0 {
			break
		}
		levels[d] = next
		for m := range next {
			seen[m] = struct{}{}
		}
		l.opts.OnLevel(dir, d, len(next))
		frontier = next
	}

	return levels, seen, nil
}

// arcs fetches the adjacency of one frontier member in sweep direction.
func (l *leveler) arcs(dir Direction, name string) ([]core.Arc, error) {
	if dir == Backward {
		return l.graph.InArcs(name)
	}

	return l.graph.OutArcs(name)
}

// far returns the arc endpoint away from the frontier member.
func far(dir Direction, a core.Arc) string {
	if dir == Backward {
		return a.From
	}

	return a.To
}

// seenByName reports whether name occurs in the sweep at any parity.
func seenByName(seen Set, name string) bool {
	return seen.HasName(name)
}
