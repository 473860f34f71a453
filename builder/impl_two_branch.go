// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// impl_two_branch.go - implementation of TwoBranch(w1, w2) constructor.
//
// The fixture of choice for sampling-fidelity checks: two disjoint routes
// S→B1→T and S→B2→T whose draw ratio must converge to w1/(w1+w2).
//
//	      w1   ┌────┐  1
//	    ┌─────►│ B1 ├─────┐
//	┌───┤      └────┘     ├───┐
//	│ S │                 │ T │
//	└───┤      ┌────┐     ├───┘
//	    └─────►│ B2 ├─────┘
//	      w2   └────┘  1
//
// Contract:
//   - w1 > 0 and w2 > 0 (else ErrOptionViolation).
//   - Fixed IDs "S", "B1", "B2", "T" (cfg.idFn is not consulted).
//   - Branch weights ride the S-side arcs; the T-side arcs carry the
//     default weight, so path masses are exactly w1 and w2.
//   - On an unweighted graph only w1 == w2 == core.DefaultEdgeWeight is
//     representable; anything else is ErrUnsupportedGraphMode.
//   - Emission order: S→B1, B1→T, S→B2, B2→T.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(1) — four vertices, four arcs.
//   - Space: O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// File-local constants: method tag and the fixed fixture IDs.
const (
	methodTwoBranch = "TwoBranch"
	twoBranchSource = "S"
	twoBranchLeft   = "B1"
	twoBranchRight  = "B2"
	twoBranchTarget = "T"
)

// TwoBranch returns a Constructor that builds the weighted two-route fixture.
func TwoBranch(w1, w2 float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate weights early; core would reject them too, but the
		// sentinel here names the actual mistake.
		if w1 <= 0 || w2 <= 0 {
			return fmt.Errorf("%s: weights must be > 0, got w1=%g w2=%g: %w",
				methodTwoBranch, w1, w2, ErrOptionViolation)
		}

		// An unweighted graph cannot express a branch ratio other than 1:1
		// at the default weight.
		if !g.Weighted() && (w1 != core.DefaultEdgeWeight || w2 != core.DefaultEdgeWeight) {
			return fmt.Errorf("%s: custom weights on unweighted graph: %w",
				methodTwoBranch, ErrUnsupportedGraphMode)
		}

		// branchArc assembles the option list for one arc: the branch
		// weight only when observed, a sign draw only when observed.
		branchArc := func(w float64) []core.EdgeOption {
			var opts []core.EdgeOption
			if g.Weighted() {
				opts = append(opts, core.WithWeight(w))
			}
			if g.Signed() {
				opts = append(opts, core.WithSign(cfg.signFn(cfg.rng)))
			}
			return opts
		}

		// Emit the four arcs in documented order.
		type arc struct {
			from, to string
			weight   float64
		}
		arcs := []arc{
			{twoBranchSource, twoBranchLeft, w1},
			{twoBranchLeft, twoBranchTarget, core.DefaultEdgeWeight},
			{twoBranchSource, twoBranchRight, w2},
			{twoBranchRight, twoBranchTarget, core.DefaultEdgeWeight},
		}
		for _, a := range arcs {
			if err := g.AddEdge(a.from, a.to, branchArc(a.weight)...); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodTwoBranch, a.from, a.to, err)
			}
		}

		// Success: fixture constructed with masses w1 and w2.
		return nil
	}
}
