// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that an empty option list equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot()
	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)

	// nil options are skipped
	o = matrix.GatherOptionsSnapshot(nil, nil)
	require.Equal(t, matrix.DefaultEpsilon, o.Eps)
}

// TestOptions_LastWriterWins ensures options resolve in order.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)

	o = matrix.GatherOptionsSnapshot(matrix.WithEpsilon(1e-3), matrix.WithEpsilon(0))
	require.Equal(t, 0.0, o.Eps)
}

func TestWithEpsilon_PanicsOnInvalid(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.PanicsWithValue(t, matrix.PanicEpsilonInvalid, func() { matrix.WithEpsilon(eps) })
	}
}
