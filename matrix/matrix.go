// Package matrix provides the square float64 store backing the VRPTWMS
// solver's per-worker travel+service matrices and pheromone trail matrix.
//
// Graph adjacency/incidence builders, metric closure and linear algebra
// kernels (LU/QR/eigen/inverse) have no role here: no shortest-path closure
// or spectral analysis is needed by a vehicle routing solver. Only a generic
// Matrix interface and its Dense implementation are kept, sized to exactly
// the square-matrix shape the solver's cost and pheromone tables need.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns a sentinel error on
// misuse rather than panicking, so callers on a hot path can choose to
// ignore errors they have already validated are impossible.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (row, col). Complexity: O(1).
	At(row, col int) (float64, error)

	// Set assigns v at (row, col). Complexity: O(1).
	Set(row, col int, v float64) error

	// Clone returns a deep, independent copy. Complexity: O(rows*cols).
	Clone() Matrix
}
