// Package builder provides internal helper functions and types
// for configuring arc-sign distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
)

// SignFn produces an arc sign given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type SignFn func(rng *rand.Rand) core.Sign

// DefaultSignFn always returns core.Positive.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultSignFn(_ *rand.Rand) core.Sign {
	return core.Positive
}

// BernoulliSignFn returns a SignFn yielding core.Negative with probability
// pNeg and core.Positive otherwise. Panics if pNeg ∉ [0,1].
// If rng is nil, yields core.Positive to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func BernoulliSignFn(pNeg float64) SignFn {
	if pNeg < 0 || pNeg > 1 {
		panic(fmt.Sprintf("BernoulliSignFn: pNeg must be in [0,1], got %g", pNeg))
	}
	return func(rng *rand.Rand) core.Sign {
		if rng == nil {
			return core.Positive
		}
		if rng.Float64() < pNeg {
			return core.Negative
		}

		return core.Positive
	}
}

// WithBernoulliSigns sets arc signs ∼ Bernoulli(pNeg) via BernoulliSignFn.
// Complexity: O(1).
func WithBernoulliSigns(pNeg float64) BuilderOption {
	return WithSignFn(BernoulliSignFn(pNeg))
}
