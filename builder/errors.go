// SPDX-License-Identifier: MIT
// Package: cfpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Wrap with method context: fmt.Errorf("%s: ...: %w", methodCycle, ErrX).
//   • Return ONLY these sentinels for validation classes (size/probability/rng/mode).
//   • Do NOT stringify parameters into sentinel definitions; use %w wrapping instead.
//   • Check with errors.Is in tests and production code; avoid string comparisons.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Classification: Validation error (parameters).
// Typical origins: Path (n<2), Cycle (n<3), Complete (n<1), RandomSparse (n<1).
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1]. This covers RandomSparse(p); probability-taking
// option constructors (BernoulliSignFn) panic instead.
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origin: RandomSparse with 0 < p < 1 and no RNG.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the current core.Graph mode (e.g., TwoBranch with custom weights on an
// unweighted graph).
// Usage: if errors.Is(err, ErrUnsupportedGraphMode) { /* switch graph mode */ }.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the builder could not assemble the
// requested topology without breaking core invariants, or that BuildGraph
// received an unusable constructor (nil).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect wrapped detail */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a meaningless build parameter that is not a
// size or probability (e.g., TwoBranch weight ≤ 0). NOTE: WithX(...) option
// constructors panic on bad values instead; this sentinel covers validations
// that must surface as errors at construction time.
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct parameter */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")
