// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//

package matrix

import "math"

// ---------- Constructors & Utilities (O(1) alloc + O(rc) zeroing by runtime) ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity[T Float](n int, opts ...Option) (*Dense[T], error) {
	I, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing.
func ZerosLike[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}

// AsDense returns m itself when it is a *Dense, a materialized copy for a
// *View, and an element-wise copy through At for any other implementation.
//
// Errors: ErrNilMatrix, or whatever At reports.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense[T Float](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	switch x := m.(type) {
	case *Dense[T]:
		return x, nil
	case *View[T]:
		return x.Materialize(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("AsDense", err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// ---------- Linear Algebra (facades map 1:1 to kernels; O(rc) unless noted) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Float](a, b Matrix[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Float](a, b Matrix[T]) (*Dense[T], error) { return Sub(a, b) }

// HadamardProd is an alias for Hadamard: element-wise product a ⊙ b.
func HadamardProd[T Float](a, b Matrix[T]) (*Dense[T], error) { return Hadamard(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T[E Float](m Matrix[E]) (*Dense[E], error) { return Transpose(m) }

// ScaleBy is an alias for Scale: α*m.
func ScaleBy[T Float](m Matrix[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// IsIdentity reports whether m is square with |m[i,i]-1| <= eps and
// |m[i,j]| <= eps elsewhere. eps comes from WithEpsilon (DefaultEpsilon).
// Errors: ErrNilMatrix. A non-square m yields (false, nil).
func IsIdentity[T Float](m Matrix[T], opts ...Option) (bool, error) {
	src, err := AsDense(m)
	if err != nil {
		return false, matrixErrorf("IsIdentity", err)
	}
	if src.r != src.c {
		return false, nil
	}
	eps := gatherOptions(opts...).eps
	var want float64
	for i := 0; i < src.r; i++ {
		for j := 0; j < src.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if !(math.Abs(float64(src.data[i*src.c+j])-want) <= eps) {
				return false, nil
			}
		}
	}

	return true, nil
}
