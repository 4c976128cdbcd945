// Package vrp - RNG utilities shared by every stochastic driver.
//
// This file centralizes deterministic random generation for ACO/GRASP/VNS.
//
// Goals:
//   - Determinism: same Options.Seed => identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics; stream derivation never fails.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; the solver is single-threaded by
//     design, so a single *rand.Rand is shared across one Solve
//     call and substreams are derived, never shared across goroutines.
package vrp

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, so per-ant/per-restart
// streams stay independent even though they share one parent seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier (e.g. ant index, VNS restart count). If base is
// nil, defaultRNGSeed is used as the parent. Otherwise base.Int63() is
// consumed once to decorrelate consecutive derivations.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// weightedChoice performs roulette-wheel selection over non-negative
// weights, returning the chosen index. Iteration order is ascending index,
// matching the "use insertion order" determinism contract. If the total
// weight is zero or negative, the first index is returned (never panics,
// never picks by uniform fallback, which would silently change which
// candidate dominates a degenerate all-zero-weight draw).
func weightedChoice(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	target := rng.Float64() * total
	var acc float64
	for i, w := range weights {
		if w > 0 {
			acc += w
		}
		if acc >= target {
			return i
		}
	}
	return len(weights) - 1
}
