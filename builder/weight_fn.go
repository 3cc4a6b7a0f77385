package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the arc cost used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a non-negative arc cost from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntWeightFn samples integers uniformly in [min, max].
// Integer costs keep sums exact, so equal-cost paths compare equal.
// Panics unless 0 ≤ min ≤ max. A nil rng yields min.
func UniformIntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}
		return float64(min + rng.Intn(max-min+1))
	}
}

// ExponentialWeightFn samples Exp(rate) rounded to the nearest integer.
// Panics if rate ≤ 0. A nil rng yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed arc cost.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformIntWeight sets integer arc costs ∼ U{min..max}.
func WithUniformIntWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}
