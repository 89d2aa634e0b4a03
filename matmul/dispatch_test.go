// SPDX-License-Identifier: MIT

package matmul_test

import (
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/stretchr/testify/require"
)

func TestLaneWidthMatchesRegister(t *testing.T) {
	w := matmul.Width()
	require.Contains(t, []int{16, 32, 64}, w)
	require.Equal(t, w/4, matmul.LaneWidth[float32]())
	require.Equal(t, w/8, matmul.LaneWidth[float64]())
	require.Equal(t, 2*matmul.LaneWidth[float64](), matmul.LaneWidth[float32]())
}

func TestDispatchLevelString(t *testing.T) {
	require.Equal(t, "scalar", matmul.DispatchScalar.String())
	require.Equal(t, "avx2", matmul.DispatchAVX2.String())
	require.Equal(t, "avx512", matmul.DispatchAVX512.String())
	require.Equal(t, "neon", matmul.DispatchNEON.String())
	require.Equal(t, "unknown", matmul.DispatchLevel(-1).String())
	require.NotEqual(t, "unknown", matmul.Level().String())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(matmul.NoSimdEnvVar, tt.val)
		require.Equal(t, tt.want, matmul.NoSimdEnv(), "value %q", tt.val)
	}
}
