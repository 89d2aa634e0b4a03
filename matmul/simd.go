// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/blockmul/matrix"

const opSIMD = "SIMD"

// SIMD computes C = A×B with a lane-parallel inner product.
//
// MAIN DESCRIPTION:
//   - The k-sum of every C[i,j] is split across L independent accumulators,
//     one per lane, the way a vector unit would hold them in one register.
//
// Implementation:
//   - Stage 1: resolve L from WithLanes, or LaneWidth[T]() when unset.
//   - Stage 2: for each output column j, pack column j of B into a contiguous
//     buffer once and reuse it for every row of A.
//   - Stage 3: lane p%L accumulates A[i,p]*B[p,j] for the k - k%L leading
//     elements; the lanes are then summed in lane order.
//   - Stage 4: a scalar loop adds the remaining k%L products.
//
// Behavior highlights:
//   - Every element of the k-dimension is summed exactly once.
//   - L > k degenerates to the scalar remainder loop.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n + k + L).
func SIMD[T matrix.Float](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	ad, bd, c, err := operands(opSIMD, a, b)
	if err != nil {
		return nil, err
	}
	lanes := gatherOptions(opts...).lanes
	if lanes == 0 {
		lanes = LaneWidth[T]()
	}

	m, k, n := ad.Rows(), ad.Cols(), bd.Cols()
	simdKernel(m, k, n, ad.Data(), k, bd.Data(), n, c.Data(), n, lanes)

	return c, nil
}

func simdKernel[T matrix.Float](m, k, n int, a []T, lda int, b []T, ldb int, c []T, ldc int, lanes int) {
	col := make([]T, k)
	acc := make([]T, lanes)
	full := k - k%lanes
	var i, j, p int
	for j = 0; j < n; j++ {
		for p = 0; p < k; p++ {
			col[p] = b[p*ldb+j]
		}
		for i = 0; i < m; i++ {
			c[i*ldc+j] = dotLanes(a[i*lda:i*lda+k], col, acc, full)
		}
	}
}

// dotLanes returns Σ x[p]*y[p] using len(acc) lane accumulators over the
// first full elements and a scalar tail for the rest. full must be a
// multiple of len(acc).
func dotLanes[T matrix.Float](x, y, acc []T, full int) T {
	clear(acc)
	lanes := len(acc)
	for p := 0; p < full; p += lanes {
		xs, ys := x[p:p+lanes], y[p:p+lanes]
		for l := range acc {
			acc[l] += xs[l] * ys[l]
		}
	}

	// horizontal reduction
	var sum T
	for _, v := range acc {
		sum += v
	}
	for p := full; p < len(x); p++ {
		sum += x[p] * y[p]
	}

	return sum
}
