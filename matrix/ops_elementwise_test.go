// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, 100, -5})
	b := NewFilledDense(t, 1, 3, []float64{1 + 1e-12, 100 + 1e-8, -5})

	ok, err := matrix.AllClose[float64](a, b, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose[float64](a, b, 1e-12, 0)
	require.NoError(t, err)
	require.False(t, ok)

	// fallback path agrees
	ok, err = matrix.AllClose[float64](hide{a}, hide{b}, 1e-9, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose[float64](a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose[float64](a, MustDense(t, 2, 2), 1, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllCloseNaNNeverClose(t *testing.T) {
	a, err := matrix.NewDenseFrom(1, 1, []float64{math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err := matrix.AllClose[float64](a, a, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMaxDiffs(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float64{1, 10, 0.5})
	b := NewFilledDense(t, 1, 3, []float64{1.5, 8, 0.25})

	abs, err := matrix.MaxAbsDiff[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, 2.0, abs)

	rel, err := matrix.MaxRelDiff[float64](a, b)
	require.NoError(t, err)
	require.InDelta(t, 1.0/3.0, rel, 1e-15) // |1-1.5|/1.5 beats |10-8|/8 and |0.5-0.25|/1

	_, err = matrix.MaxAbsDiff[float64](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestClip(t *testing.T) {
	a := NewFilledDense(t, 1, 4, []float64{-2, 0, 0.5, 3})
	c, err := matrix.Clip[float64](a, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 0.5, 1}, c.Data())
	require.Equal(t, []float64{-2, 0, 0.5, 3}, a.Data())

	_, err = matrix.Clip[float64](a, 1, 0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
