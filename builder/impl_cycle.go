// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits ring arcs i → (i+1) mod n for i=0..n-1 in stable order, so the
//     closing arc (n-1) → 0 comes last.
//   - Weight/sign policy: drawn per arc via arcOptions (observed modes only).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n) arcs.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, id, err)
			}
		}

		// Emit ring arcs; the modulo wraps the final arc back to vertex 0.
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v, arcOptions(g, cfg)...); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, u, v, err)
			}
		}

		// Success: cycle fully constructed.
		return nil
	}
}
