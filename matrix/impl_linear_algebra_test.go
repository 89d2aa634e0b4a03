// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSubHadamard(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := matrix.Add[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, sum.Data())

	diff, err := matrix.Sub[float64](b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27, 36}, diff.Data())

	had, err := matrix.Hadamard[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 40, 90, 160}, had.Data())

	// operands are not mutated
	require.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestAddFallbackMatchesFastPath(t *testing.T) {
	a := RandomDense(t, 5, 7, 1)
	b := RandomDense(t, 5, 7, 2)

	fast, err := matrix.Sum[float64](a, b)
	require.NoError(t, err)
	slow, err := matrix.Sum[float64](hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, fast, slow)
}

func TestBinaryOpsShapeErrors(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	_, err := matrix.Add[float64](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Diff[float64](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.HadamardProd[float64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleTranspose(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	s, err := matrix.ScaleBy[float64](a, 2)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4, 6, 8, 10, 12}, s.Data())

	tr, err := matrix.T[float64](a)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())

	back, err := matrix.Transpose[float64](tr)
	require.NoError(t, err)
	CompareExact(t, a, back)
}

func TestTrace(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	tr, err := matrix.Trace[float64](a)
	require.NoError(t, err)
	require.Equal(t, 15.0, tr)

	_, err = matrix.Trace[float64](MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestFrobeniusNorm(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float64{3, 0, 0, 4})
	n, err := matrix.FrobeniusNorm[float64](a)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, 1e-15)

	f, err := matrix.NewDenseFrom(1, 2, []float32{1, 1})
	require.NoError(t, err)
	nf, err := matrix.FrobeniusNorm[float32](f)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, nf, 1e-12)
}
