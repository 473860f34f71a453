// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Topology constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible stochastic builders (RandomSparse).
//   • Use WithIDScheme to align vertex labels across tests/golden files.
//   • WithWeightFn affects weighted graphs only; WithSignFn affects signed
//     graphs only — core controls whether either is observed.

package builder

import "math/rand"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
// Complexity: O(1) time, O(1) space.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		// Fail fast: option constructors validate and panic.
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		// Assign the provided function; used by all topology builders.
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-arc weight generator.
// The function receives the (possibly nil) RNG and MUST be pure w.r.t. input
// RNG state to preserve determinism. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		// Fail fast; weight policy must be explicit if customized.
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		// Store generator; consulted only when the core graph is weighted.
		c.weightFn = fn
	}
}

// WithSignFn overrides the per-arc sign generator.
// Panics on nil. Consulted only when the core graph is signed.
// Complexity: O(1) time, O(1) space.
func WithSignFn(fn SignFn) BuilderOption {
	if fn == nil {
		// Fail fast; sign policy must be explicit if customized.
		panic("builder: WithSignFn(nil)")
	}
	return func(c *builderConfig) {
		// Store generator; consulted only when the core graph is signed.
		c.signFn = fn
	}
}
