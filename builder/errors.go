// Package builder: sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with fmt.Errorf("%w", ...) at the
//     call site, never by stringifying into the sentinel itself.
package builder

import "errors"

// ErrTooFewVertices indicates a requested customer count is below the
// generator's minimum (n must be >= 1 beyond the depot).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability parameter (e.g. time-window
// tightness) lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic generator requires a non-nil
// *rand.Rand (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates an invalid grid size (rows/cols <= 0), or a nil
// constructor passed to BuildInstance.
var ErrBadSize = errors.New("builder: invalid size")
