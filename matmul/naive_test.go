// SPDX-License-Identifier: MIT

package matmul_test

import (
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

func TestNaiveKnownProduct(t *testing.T) {
	a := filled(t, 2, 3,
		1, 2, 3,
		4, 5, 6)
	b := filled(t, 3, 2,
		7, 8,
		9, 10,
		11, 12)

	c, err := matmul.Naive[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	require.Equal(t, []float64{58, 64, 139, 154}, c.Data())

	// operands are left untouched
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
}

func TestNaiveOneByOne(t *testing.T) {
	c, err := matmul.Naive[float64](filled(t, 1, 1, 3), filled(t, 1, 1, -2))
	require.NoError(t, err)
	require.Equal(t, []float64{-6}, c.Data())
}

func TestNaiveFallbackInputs(t *testing.T) {
	a, b := randomPair[float64](t, 5, 4, 3, 11)
	want := mustNaive(t, a, b)
	got, err := matmul.Naive[float64](hide{a}, hide{b})
	require.NoError(t, err)
	requireExact(t, want, got)
}

func TestNilOperands(t *testing.T) {
	a := filled(t, 1, 1, 1)
	for _, s := range matmul.Strategies() {
		_, err := matmul.Multiply[float64](s, nil, a)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, s.String())
		_, err = matmul.Multiply[float64](s, a, nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, s.String())
	}
}
