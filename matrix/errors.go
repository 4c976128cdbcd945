// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All methods MUST
// return these sentinels and tests MUST check them via errors.Is. No method
// should panic on caller-triggered error conditions.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or +/-Inf value where a finite value is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
