// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the public Matrix interface.
// Errors and options live in dedicated files (errors.go, options.go) per the
// package conventions.
package matrix

// Float is the element constraint for every container in this package.
// Both precisions share one code path; kernels are instantiated per type.
type Float interface {
	~float32 | ~float64
}

// Matrix represents a two-dimensional mutable array of T values.
//
// Implementations in this package: *Dense[T] (owning, row-major) and *View[T]
// (non-owning window). Operations take a fast path for *Dense[T] and fall back
// to At/Set for anything else.
//
// Complexity notes: all methods are expected O(1).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf when the
	// numeric policy rejects v.
	Set(i, j int, v T) error
}
