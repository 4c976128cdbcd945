// File: dense.go
// Role: Dense is the row-major Matrix implementation used for both the
// per-worker travel+service matrices (cost.go in the vrp package) and the
// pheromone trail matrix (pheromone.go). The NaN/Inf write guard matters
// because pheromone updates and insertion-cost arithmetic must never
// silently store a non-finite value.
package matrix

import "fmt"

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r x c Dense matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("matrix.Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col). Rejects NaN/+-Inf.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if v != v || v > maxFinite || v < -maxFinite {
		return fmt.Errorf("matrix.Dense(%d,%d): %w", row, col, ErrNaNInf)
	}
	m.data[idx] = v
	return nil
}

// maxFinite bounds the accepted magnitude without importing math just for
// IsNaN/IsInf; any VRPTWMS cost or pheromone value is many orders of
// magnitude below this.
const maxFinite = 1e300

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// Fill sets every entry to v, bypassing the per-call bounds/NaN checks of
// Set.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// AtUnchecked reads (row,col) without bounds checking. Callers (cost lookups
// and pheromone trail computation) that already know the indices are valid
// use this to avoid an error-return allocation on the hottest path.
func (m *Dense) AtUnchecked(row, col int) float64 {
	return m.data[row*m.c+col]
}

// SetUnchecked writes (row,col) without bounds/NaN checking.
func (m *Dense) SetUnchecked(row, col int, v float64) {
	m.data[row*m.c+col] = v
}
