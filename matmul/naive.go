// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/blockmul/matrix"

const opNaive = "Naive"

// Naive computes C = A×B with the textbook i-j-p triple loop.
//
// MAIN DESCRIPTION:
//   - The correctness reference every other strategy is compared with.
//
// Behavior highlights:
//   - Each C[i,j] accumulates A[i,p]*B[p,j] from zero in ascending p.
//   - Options are accepted for a uniform signature and ignored.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil operand.
//   - ErrShapeMismatch when a.Cols() != b.Rows().
//
// Complexity:
//   - Time O(m*n*k), Space O(m*n) for the result.
func Naive[T matrix.Float](a, b matrix.Matrix[T], _ ...Option) (*matrix.Dense[T], error) {
	ad, bd, c, err := operands(opNaive, a, b)
	if err != nil {
		return nil, err
	}
	m, k, n := ad.Rows(), ad.Cols(), bd.Cols()
	naiveKernel(m, k, n, ad.Data(), k, bd.Data(), n, c.Data(), n)

	return c, nil
}
