// Package builder provides internal helper functions and types
// for configuring arc-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/cfpath/core"
)

// WeightFn produces an arc weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration. Weights must satisfy core's
// rule: positive and finite.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant core.DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return core.DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value ≤ 0 (core rejects non-positive weights).
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min ≤ 0 or max < min.
// If rng is nil, yields core.DefaultEdgeWeight to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 < min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return core.DefaultEdgeWeight
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}
		// Continuous uniform on [min, max) (Float64() returns [0,1))
		span := max - min

		return min + rng.Float64()*span
	}
}

// WithConstantWeight sets a fixed arc weight via ConstantWeightFn.
// Complexity: O(1).
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
