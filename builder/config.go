// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn     = DefaultIDFn        ("0","1","2",…)
//   • rng      = nil                (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn    (constant core.DefaultEdgeWeight)
//   • signFn   = DefaultSignFn      (always core.Positive)
//
// AI-Hints:
//   • Set WithSeed for reproducible RandomSparse fixtures.
//   • Override WithIDScheme for human-readable labels in examples/golden tests.
//   • Weight policy matters only if the core graph is weighted; sign policy
//     only if it is signed.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for arcs; consulted only for weighted graphs.
	weightFn WeightFn
	// Sign generator for arcs; consulted only for signed graphs.
	signFn SignFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	// Start with strict, deterministic defaults.
	cfg := builderConfig{
		idFn:     DefaultIDFn,     // "0","1","2",…
		rng:      nil,             // no RNG unless explicitly set
		weightFn: DefaultWeightFn, // constant weight
		signFn:   DefaultSignFn,   // all-Positive arcs
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// arcOptions draws the per-arc options for g's mode: a weight when the graph
// observes weights, a sign when it observes signs. RNG consumption order is
// fixed — weight draw first, then sign draw — so outcomes are reproducible
// for a given seed and emission order.
// Complexity: O(1) time, O(1) space per arc.
func arcOptions(g *core.Graph, cfg builderConfig) []core.EdgeOption {
	var opts []core.EdgeOption
	if g.Weighted() {
		opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if g.Signed() {
		opts = append(opts, core.WithSign(cfg.signFn(cfg.rng)))
	}

	return opts
}
