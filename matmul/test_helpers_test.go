// SPDX-License-Identifier: MIT
// Package matmul_test contains test helpers
//
// Purpose:
//   • Deterministic seeded operands for strategy cross-checks.
//   • Tolerance assertions against the naive reference.

package matmul_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS a Matrix to force the non-*Dense input path.
type hide struct{ matrix.Matrix[float64] }

// randomPair BUILDS A (m×k) and B (k×n) from one seeded generator.
func randomPair[T matrix.Float](t testing.TB, m, k, n int, seed int64) (*matrix.Dense[T], *matrix.Dense[T]) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewRandom[T](m, k, rng)
	require.NoError(t, err)
	b, err := matrix.NewRandom[T](k, n, rng)
	require.NoError(t, err)

	return a, b
}

// filled BUILDS an r×c float64 matrix from row-major values.
func filled(t testing.TB, r, c int, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// requireClose ASSERTS |got-want| <= tol + tol*|want| element-wise.
func requireClose[T matrix.Float](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	ok, err := matrix.AllClose[T](got, want, tol, tol)
	require.NoError(t, err)
	if !ok {
		worst, _ := matrix.MaxRelDiff[T](got, want)
		require.Failf(t, "results differ", "max relative diff %g exceeds %g", worst, tol)
	}
}

// requireExact ASSERTS bitwise equality.
func requireExact[T matrix.Float](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	require.Equal(t, want.Data(), got.Data())
}

// mustNaive RETURNS the reference product.
func mustNaive[T matrix.Float](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	c, err := matmul.Naive[T](a, b)
	require.NoError(t, err)

	return c
}
