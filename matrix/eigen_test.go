// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestSymmetricEigenvaluesKnown(t *testing.T) {
	tests := []struct {
		name string
		n    int
		vals []float64
		want []float64
	}{
		{"2x2", 2, []float64{2, 1, 1, 2}, []float64{1, 3}},
		{"diagonal", 3, []float64{5, 0, 0, 0, -1, 0, 0, 0, 2}, []float64{-1, 2, 5}},
		{"1x1", 1, []float64{7}, []float64{7}},
		{"zero", 2, []float64{0, 0, 0, 0}, []float64{0, 0}},
		// tridiagonal [2 -1; -1 2 -1; -1 2]: 2-√2, 2, 2+√2
		{"tridiagonal", 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2}, []float64{2 - math.Sqrt2, 2, 2 + math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewFilledDense(t, tt.n, tt.n, tt.vals)
			got, err := matrix.SymmetricEigenvalues[float64](m)
			require.NoError(t, err)
			require.InDeltaSlice(t, tt.want, got, 1e-12)
			// input untouched
			require.Equal(t, tt.vals, m.Data())
		})
	}
}

// Σλ = trace and Σλ² = ‖A‖_F² for a random symmetric matrix.
func TestSymmetricEigenvaluesInvariants(t *testing.T) {
	r := RandomDense(t, 24, 24, 5)
	rt, err := matrix.Transpose[float64](r)
	require.NoError(t, err)
	sym, err := matrix.Add[float64](r, rt)
	require.NoError(t, err)

	eig, err := matrix.SymmetricEigenvalues[float64](hide{sym})
	require.NoError(t, err)
	require.Len(t, eig, 24)

	var sum, sq float64
	for i, v := range eig {
		sum += v
		sq += v * v
		if i > 0 {
			require.LessOrEqual(t, eig[i-1], v)
		}
	}
	tr, err := matrix.Trace[float64](sym)
	require.NoError(t, err)
	fro, err := matrix.FrobeniusNorm[float64](sym)
	require.NoError(t, err)
	require.InDelta(t, tr, sum, 1e-9)
	require.InDelta(t, fro*fro, sq, 1e-8)
}

func TestSymmetricEigenvaluesErrors(t *testing.T) {
	_, err := matrix.SymmetricEigenvalues[float64](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SymmetricEigenvalues[float64](MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	_, err = matrix.SymmetricEigenvalues[float64](asym)
	require.ErrorIs(t, err, matrix.ErrNotSymmetric)

	// a looser epsilon accepts a slightly asymmetric input
	near := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-6, 4})
	_, err = matrix.SymmetricEigenvalues[float64](near, matrix.WithEpsilon(1e-5))
	require.NoError(t, err)

	f, err := matrix.NewDenseFrom(2, 2, []float32{2, 1, 1, 2})
	require.NoError(t, err)
	eig, err := matrix.SymmetricEigenvalues[float32](f)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 3}, eig, 1e-6)
}
