// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/blockmul/matrix"

const opTiled = "Tiled"

// Tiled computes C = A×B by partitioning the i, j and k ranges into blocks
// of WithTileSize (DefaultTileSize) so that the working set of one block
// triple stays cache resident.
//
// Implementation:
//   - Stage 1: loop over i0, j0, k0 block origins.
//   - Stage 2: inside a block, start from the partial C[i,j], add the k0..kMax
//     products in ascending p, and store the partial back.
//
// Behavior highlights:
//   - Grouping the k-sum per block changes rounding; results match Naive
//     within floating-point tolerance, not bitwise.
//   - Tiles larger than a dimension are clamped by the block bounds.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n).
func Tiled[T matrix.Float](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	ad, bd, c, err := operands(opTiled, a, b)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	m, k, n := ad.Rows(), ad.Cols(), bd.Cols()
	tiledKernel(m, k, n, ad.Data(), k, bd.Data(), n, c.Data(), n, o.tileSize)

	return c, nil
}

// tiledKernel accumulates a×b into c (which must start zeroed) block by block.
func tiledKernel[T matrix.Float](m, k, n int, a []T, lda int, b []T, ldb int, c []T, ldc int, tile int) {
	var i0, j0, k0, i, j, p int
	var iMax, jMax, kMax int
	var sum T
	for i0 = 0; i0 < m; i0 += tile {
		iMax = min(i0+tile, m)
		for j0 = 0; j0 < n; j0 += tile {
			jMax = min(j0+tile, n)
			for k0 = 0; k0 < k; k0 += tile {
				kMax = min(k0+tile, k)
				for i = i0; i < iMax; i++ {
					for j = j0; j < jMax; j++ {
						sum = c[i*ldc+j]
						for p = k0; p < kMax; p++ {
							sum += a[i*lda+p] * b[p*ldb+j]
						}
						c[i*ldc+j] = sum
					}
				}
			}
		}
	}
}
