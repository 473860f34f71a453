// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). Complete(1) is a single vertex.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits every ordered pair (i,j), i≠j, in row-major order: for each
//     i asc, all j asc. Self-loops are never emitted.
//   - Weight/sign policy: drawn per arc via arcOptions (observed modes only).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) arcs.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n:
// both directions of every vertex pair.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, id, err)
			}
		}

		// Emit all ordered pairs in row-major order.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v := cfg.idFn(j)
				if err := g.AddEdge(u, v, arcOptions(g, cfg)...); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, u, v, err)
				}
			}
		}

		// Success: complete digraph constructed.
		return nil
	}
}
