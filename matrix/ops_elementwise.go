// SPDX-License-Identifier: MIT

// Package matrix - element-wise comparisons and utilities.
//
// Purpose:
//   - Tolerance-based equality (AllClose) for checking numerically equivalent results.
//   - Error metrics (MaxAbsDiff, MaxRelDiff) reported by verification runs.
//   - Clip as a simple range transform.
//
// Comparisons are evaluated in float64 regardless of T, so float32 inputs
// are widened before subtraction.

package matrix

import (
	"math"
)

// pairwise visits (a[i,j], b[i,j]) in row-major order after nil/shape checks.
// Visiting stops when f returns false.
func pairwise[T Float](tag string, a, b Matrix[T], f func(av, bv float64) bool) error {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return matrixErrorf(tag, err)
	}

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense[T]); okA {
		if db, okB := b.(*Dense[T]); okB {
			for idx := range da.data {
				if !f(float64(da.data[idx]), float64(db.data[idx])) {
					return nil
				}
			}

			return nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	r, c := a.Rows(), a.Cols()
	var av, bv T
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return matrixErrorf(tag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return matrixErrorf(tag, err)
			}
			if !f(float64(av), float64(bv)) {
				return nil
			}
		}
	}

	return nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN/Inf tolerances are rejected with ErrNaNInf.
//   - A NaN element never compares close.
//
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ok := true
	err := pairwise("AllClose", a, b, func(av, bv float64) bool {
		// negated form so NaN differences fail the check
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			ok = false
		}

		return ok
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}

// MaxAbsDiff returns max |a[i,j]-b[i,j]| over all cells.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff[T Float](a, b Matrix[T]) (float64, error) {
	var worst float64
	err := pairwise("MaxAbsDiff", a, b, func(av, bv float64) bool {
		if d := math.Abs(av - bv); d > worst || math.IsNaN(d) {
			worst = d
		}

		return !math.IsNaN(worst)
	})
	if err != nil {
		return 0, err
	}

	return worst, nil
}

// MaxRelDiff returns max |a-b| / max(|b|, 1) over all cells. The unit floor
// keeps near-zero references from dominating the metric.
func MaxRelDiff[T Float](a, b Matrix[T]) (float64, error) {
	var worst float64
	err := pairwise("MaxRelDiff", a, b, func(av, bv float64) bool {
		d := math.Abs(av-bv) / math.Max(math.Abs(bv), 1)
		if d > worst || math.IsNaN(d) {
			worst = d
		}

		return !math.IsNaN(worst)
	})
	if err != nil {
		return 0, err
	}

	return worst, nil
}

// Clip returns a copy of m with every element clamped to [lo, hi].
// Errors: ErrNilMatrix; ErrBadShape when lo > hi.
func Clip[T Float](m Matrix[T], lo, hi T) (*Dense[T], error) {
	if lo > hi {
		return nil, matrixErrorf("Clip", ErrBadShape)
	}
	out, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf("Clip", err)
	}
	if out == m {
		out = out.Clone()
	}
	for i, v := range out.data {
		if v < lo {
			out.data[i] = lo
		} else if v > hi {
			out.data[i] = hi
		}
	}

	return out, nil
}
