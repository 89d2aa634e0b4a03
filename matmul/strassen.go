// SPDX-License-Identifier: MIT

package matmul

import "github.com/katalvlaran/blockmul/matrix"

const opStrassen = "Strassen"

// Strassen computes C = A×B with Strassen's seven-product recursion.
//
// MAIN DESCRIPTION:
//   - For square n×n inputs, split A and B into n/2 quadrants, form
//
//     M1=(A11+A22)(B11+B22)  M2=(A21+A22)B11     M3=A11(B12-B22)
//     M4=A22(B21-B11)        M5=(A11+A12)B22     M6=(A21-A11)(B11+B12)
//     M7=(A12-A22)(B21+B22)
//
//     recursively and recombine
//
//     C11=((M1+M4)-M5)+M7  C12=M3+M5  C21=M2+M4  C22=((M1+M3)-M2)+M6
//
// Behavior highlights:
//   - n <= WithMinSize (DefaultMinSize) or odd n: the sub-problem is solved by
//     the Naive kernel, so small inputs equal Naive bitwise. Odd sizes are not
//     padded.
//   - Quadrants are addressed as strided sub-slices of the operands; only
//     the operand sums and the seven products get scratch buffers.
//   - Non-square but compatible inputs fall back to Naive.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(n^log2(7)) above the threshold, Space O(n²) scratch.
func Strassen[T matrix.Float](a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	ad, bd, c, err := operands(opStrassen, a, b)
	if err != nil {
		return nil, err
	}
	minSize := gatherOptions(opts...).minSize

	m, k, n := ad.Rows(), ad.Cols(), bd.Cols()
	if m != k || k != n {
		naiveKernel(m, k, n, ad.Data(), k, bd.Data(), n, c.Data(), n)
		return c, nil
	}
	strassenKernel(n, ad.Data(), n, bd.Data(), n, c.Data(), n, minSize)

	return c, nil
}

// strassenKernel overwrites the n×n block c with a×b.
func strassenKernel[T matrix.Float](n int, a []T, lda int, b []T, ldb int, c []T, ldc int, minSize int) {
	if n <= minSize || n%2 != 0 {
		naiveKernel(n, n, n, a, lda, b, ldb, c, ldc)
		return
	}

	h := n / 2
	a11, a12, a21, a22 := quadrants(a, lda, h)
	b11, b12, b21, b22 := quadrants(b, ldb, h)
	c11, c12, c21, c22 := quadrants(c, ldc, h)

	hh := h * h
	scratch := make([]T, 9*hh)
	t1, t2 := scratch[0:hh], scratch[hh:2*hh]
	m1, m2, m3 := scratch[2*hh:3*hh], scratch[3*hh:4*hh], scratch[4*hh:5*hh]
	m4, m5, m6 := scratch[5*hh:6*hh], scratch[6*hh:7*hh], scratch[7*hh:8*hh]
	m7 := scratch[8*hh : 9*hh]

	addBlock(h, a11, lda, a22, lda, t1, h)
	addBlock(h, b11, ldb, b22, ldb, t2, h)
	strassenKernel(h, t1, h, t2, h, m1, h, minSize)

	addBlock(h, a21, lda, a22, lda, t1, h)
	strassenKernel(h, t1, h, b11, ldb, m2, h, minSize)

	subBlock(h, b12, ldb, b22, ldb, t2, h)
	strassenKernel(h, a11, lda, t2, h, m3, h, minSize)

	subBlock(h, b21, ldb, b11, ldb, t2, h)
	strassenKernel(h, a22, lda, t2, h, m4, h, minSize)

	addBlock(h, a11, lda, a12, lda, t1, h)
	strassenKernel(h, t1, h, b22, ldb, m5, h, minSize)

	subBlock(h, a21, lda, a11, lda, t1, h)
	addBlock(h, b11, ldb, b12, ldb, t2, h)
	strassenKernel(h, t1, h, t2, h, m6, h, minSize)

	subBlock(h, a12, lda, a22, lda, t1, h)
	addBlock(h, b21, ldb, b22, ldb, t2, h)
	strassenKernel(h, t1, h, t2, h, m7, h, minSize)

	var i, j, x, y int
	for i = 0; i < h; i++ {
		for j = 0; j < h; j++ {
			x, y = i*h+j, i*ldc+j
			c11[y] = m1[x] + m4[x] - m5[x] + m7[x]
			c12[y] = m3[x] + m5[x]
			c21[y] = m2[x] + m4[x]
			c22[y] = m1[x] + m3[x] - m2[x] + m6[x]
		}
	}
}
