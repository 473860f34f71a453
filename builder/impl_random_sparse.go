// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each ordered pair (i,j) independently
//     with probability p. Self-loops iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil for 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and tolerates a nil RNG.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight/sign policy: drawn per arc via arcOptions (observed modes only).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Stable trial order: for each i asc, j asc.
//   - Per included arc the RNG consumption order is: inclusion trial,
//     weight draw (weighted graphs), sign draw (signed graphs). Fixed trial
//     order + fixed seed ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cfpath/core"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like
// digraph over n vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	// The returned closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).

		// Validate vertex count domain: n must be at least 1.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}

		// Validate probability: must lie in the closed interval [0,1].
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}

		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomSparse, id, err)
			}
		}

		// Nothing to draw at p == 0; the vertex set alone is the fixture.
		if p == probMin {
			return nil
		}

		// 3) Cache mode flags once and walk all ordered pairs in stable order.
		loops := g.Looped()
		rng := cfg.rng
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := 0; j < n; j++ {
				// Skip self-loops unless explicitly permitted by mode flags.
				if i == j && !loops {
					continue
				}
				// Bernoulli trial: p == 1 includes unconditionally and keeps
				// a nil RNG legal; otherwise consume one Float64 per pair.
				if p < probMax && rng.Float64() >= p {
					continue
				}
				v := cfg.idFn(j)
				if err := g.AddEdge(u, v, arcOptions(g, cfg)...); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		// 4) Success: random sparse digraph sampled deterministically for a fixed seed.
		return nil
	}
}
