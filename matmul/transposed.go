// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/blockmul/matrix"

const opTransposed = "Transposed"

// Transposed computes C = A×B after materializing Bᵀ once, so every C[i,j]
// is a dot product of two contiguous rows (A row i, Bᵀ row j).
//
// Behavior highlights:
//   - Costs O(k*n) extra memory and one O(k*n) transpose pass.
//   - Each dot product starts from zero and runs p ascending.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch.
func Transposed[T matrix.Float](a, b matrix.Matrix[T], _ ...Option) (*matrix.Dense[T], error) {
	ad, bd, c, err := operands(opTransposed, a, b)
	if err != nil {
		return nil, err
	}
	bt, err := matrix.Transpose[T](bd)
	if err != nil {
		return nil, mulErrorf(opTransposed, err)
	}

	m, k, n := ad.Rows(), ad.Cols(), bd.Cols()
	av, btv, cv := ad.Data(), bt.Data(), c.Data()
	var i, j, p int
	var sum T
	for i = 0; i < m; i++ {
		ai := av[i*k : (i+1)*k]
		for j = 0; j < n; j++ {
			bj := btv[j*k : (j+1)*k]
			sum = 0
			for p = 0; p < k; p++ {
				sum += ai[p] * bj[p]
			}
			cv[i*n+j] = sum
		}
	}

	return c, nil
}
