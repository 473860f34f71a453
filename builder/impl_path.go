// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits arcs (i-1) → i for i=1..n-1 in stable increasing order.
//   - Weight/sign policy: drawn per arc via arcOptions (observed modes only).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) arcs.
//   - Space: O(1) extra.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic arc emission order by increasing i.
//   - Deterministic weights/signs given fixed cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple directed path P_n.
func Path(n int) Constructor {
	// Return a closure capturing n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameter domain early.
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Add n vertices with deterministic IDs produced by cfg.idFn.
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, id, err)
			}
		}

		// Emit path arcs 0→1→2→...→(n-1) in stable order.
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v, arcOptions(g, cfg)...); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, u, v, err)
			}
		}

		// Success: path fully constructed.
		return nil
	}
}
