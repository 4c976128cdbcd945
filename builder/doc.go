// Package builder generates synthetic VRPTWMS instances for tests, examples
// and benchmarks. It centralizes RNG handling, coordinate/demand/time-window
// distributions, and validation behind a functional-options configuration,
// keeping instance generation deterministic, testable, and consistent
// regardless of which topology a caller picks.
//
// The package offers:
//
//   - Configuration primitives:
//     BuilderOption mutates a builderConfig before generation runs.
//   - Instance factories (Constructor implementations):
//     GenerateRandom - uniformly scattered customers.
//     GenerateGrid   - evenly spaced orthogonal grid of customers.
//   - A single orchestrator, BuildInstance, that resolves options and
//     concatenates one or more constructors into a single node slice with
//     the depot fixed at index 0.
//
// Guarantees:
//
//   - Determinism: the same options and constructor order produce the same
//     node slice, given the same (or no) RNG seed.
//   - Fail-fast option constructors: invalid knobs (negative demand range,
//     zero plane extent, tightness outside [0,1]) panic immediately rather
//     than propagating a silently broken configuration.
//   - Generators never panic; invalid generator arguments (n <= 0, missing
//     RNG for a stochastic generator) return sentinel errors from errors.go.
package builder
