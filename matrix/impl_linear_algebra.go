// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, Hadamard product, transpose,
// scalar scaling, trace and the Frobenius norm. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Matrix products live in package matmul, which offers several strategies
// over the same Dense storage.
//
// Notes:
//   - Every operation allocates a fresh *Dense result; operands are never mutated.
//   - *Dense operands take a single flat-loop fast path; other Matrix
//     implementations go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opHadamard  = "Hadamard"
	opTrace     = "Trace"
	opFrobenius = "FrobeniusNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipWith computes out[i,j] = f(a[i,j], b[i,j]) for identically shaped inputs.
// Internal helper for Add/Sub/Hadamard to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape.
//   - Stage 2: allocate result with the policy of a (when *Dense).
//   - Stage 3: flat loop for *Dense pairs, At-based loop otherwise.
//
// Complexity: O(r*c).
func zipWith[T Float](opTag string, a, b Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, ok := a.(*Dense[T]); ok {
		if db, ok2 := b.(*Dense[T]); ok2 {
			for i := range res.data {
				res.data[i] = f(da.data[i], db.data[i])
			}

			return res, nil
		}
	}

	var av, bv T
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T Float](a, b Matrix[T]) (*Dense[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Float](a, b Matrix[T]) (*Dense[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T Float](a, b Matrix[T]) (*Dense[T], error) {
	return zipWith(opHadamard, a, b, func(x, y T) T { return x * y })
}

// Scale returns alpha*m.
// Errors: ErrNilMatrix.
func Scale[T Float](m Matrix[T], alpha T) (*Dense[T], error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense[T](src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i, v := range src.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Transpose returns mᵀ (shape c×r).
//
// Implementation:
//   - Stage 1: materialize m as Dense (no copy for *Dense).
//   - Stage 2: write res[j,i] = m[i,j], reading m row by row.
//
// Complexity: O(r*c) time, O(r*c) space.
func Transpose[T Float](m Matrix[T]) (*Dense[T], error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	r, c := src.r, src.c
	res, err := NewDense[T](c, r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			res.data[j*r+i] = src.data[base+j]
		}
	}

	return res, nil
}

// Trace returns Σ m[i,i] accumulated in ascending i.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T Float](m Matrix[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum, v T
	var err error
	for i := 0; i < m.Rows(); i++ {
		if v, err = m.At(i, i); err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²), accumulated in float64.
// Errors: ErrNilMatrix.
func FrobeniusNorm[T Float](m Matrix[T]) (float64, error) {
	src, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	var sum float64
	for _, v := range src.data {
		sum += float64(v) * float64(v)
	}

	return math.Sqrt(sum), nil
}
