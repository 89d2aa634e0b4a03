// SPDX-License-Identifier: MIT

package matmul_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/blockmul/matmul"
	"github.com/stretchr/testify/require"
)

func TestEpsilon(t *testing.T) {
	require.Equal(t, math.Pow(2, -23), matmul.Epsilon[float32]())
	require.Equal(t, math.Pow(2, -52), matmul.Epsilon[float64]())
}

func TestTolerance(t *testing.T) {
	require.Equal(t, matmul.DefaultRelTolerance64, matmul.Tolerance[float64](64))
	require.Greater(t, matmul.Tolerance[float32](256), matmul.Tolerance[float32](16))
	require.Less(t, matmul.Tolerance[float32](256), 1e-3)
	require.Equal(t, matmul.Tolerance[float32](1), matmul.Tolerance[float32](0))
}
