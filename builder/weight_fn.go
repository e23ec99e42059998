package builder

import (
	"math"
	"math/rand"

	"github.com/arborist-graph/lattice/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source. It
// must be deterministic for a given RNG state; a nil rng means the caller
// wants a fixed fallback rather than a sampled value.
type WeightFn[W core.Weight] func(rng *rand.Rand) W

// ConstantWeightFn always returns value, ignoring rng.
func ConstantWeightFn[W core.Weight](value W) WeightFn[W] {
	return func(_ *rand.Rand) W { return value }
}

// UniformWeightFn samples uniformly in the half-open range [min, max): the
// sample min + u*(max-min), u in [0,1), is converted to W, so max itself is
// never returned. Falls back to min when rng is nil or the interval is
// degenerate.
func UniformWeightFn[W core.Weight](min, max W) WeightFn[W] {
	return func(rng *rand.Rand) W {
		if rng == nil || max <= min {
			return min
		}
		lo, hi := float64(min), float64(max)
		return W(lo + rng.Float64()*(hi-lo))
	}
}

// NormalWeightFn samples from N(mean, stddev), rounding to the nearest
// integer (also for floating-point W) and clamping to zero. Falls back to
// mean when rng is nil.
func NormalWeightFn[W core.Weight](mean, stddev float64) WeightFn[W] {
	return func(rng *rand.Rand) W {
		if rng == nil {
			return W(mean)
		}
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		if sample < 0 {
			sample = 0
		}
		return W(sample)
	}
}
