// Package matrix provides a small row-major float64 matrix (Dense) behind a
// generic Matrix interface. See matrix.go for the contract and dense.go for
// the implementation used throughout the vrp package.
package matrix
