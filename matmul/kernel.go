// SPDX-License-Identifier: MIT

// Package matmul - strided block kernels.
//
// Every kernel works on row-major blocks described by a backing slice and a
// leading dimension (stride): element (i,j) of a block x with stride ldx is
// x[i*ldx+j]. A block that starts inside a bigger matrix is just the
// sub-slice beginning at that offset, which is how Strassen addresses its
// quadrants without copying them.

package matmul

import "github.com/katalvlaran/blockmul/matrix"

// naiveKernel overwrites the m×n block c with a×b, where a is m×k and b is k×n.
// For every (i,j) the products are accumulated from zero in ascending p.
// Complexity: O(m*n*k).
func naiveKernel[T matrix.Float](m, k, n int, a []T, lda int, b []T, ldb int, c []T, ldc int) {
	var i, j, p int
	var sum T
	for i = 0; i < m; i++ {
		ai := a[i*lda:]
		for j = 0; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += ai[p] * b[p*ldb+j]
			}
			c[i*ldc+j] = sum
		}
	}
}

// addBlock writes out = x + y for h×h blocks.
func addBlock[T matrix.Float](h int, x []T, ldx int, y []T, ldy int, out []T, ldo int) {
	for i := 0; i < h; i++ {
		xi, yi, oi := x[i*ldx:i*ldx+h], y[i*ldy:i*ldy+h], out[i*ldo:i*ldo+h]
		for j := range oi {
			oi[j] = xi[j] + yi[j]
		}
	}
}

// subBlock writes out = x - y for h×h blocks.
func subBlock[T matrix.Float](h int, x []T, ldx int, y []T, ldy int, out []T, ldo int) {
	for i := 0; i < h; i++ {
		xi, yi, oi := x[i*ldx:i*ldx+h], y[i*ldy:i*ldy+h], out[i*ldo:i*ldo+h]
		for j := range oi {
			oi[j] = xi[j] - yi[j]
		}
	}
}

// quadrants splits a 2h×2h block with stride ld into its four h×h quadrants.
func quadrants[T matrix.Float](x []T, ld, h int) (x11, x12, x21, x22 []T) {
	return x, x[h:], x[h*ld:], x[h*ld+h:]
}

// operands validates a and b and returns them as Dense together with a
// zeroed result of shape a.Rows() × b.Cols().
func operands[T matrix.Float](op string, a, b matrix.Matrix[T]) (ad, bd, c *matrix.Dense[T], err error) {
	if err = validateOperands(op, a, b); err != nil {
		return nil, nil, nil, err
	}
	if ad, err = matrix.AsDense(a); err != nil {
		return nil, nil, nil, mulErrorf(op, err)
	}
	if bd, err = matrix.AsDense(b); err != nil {
		return nil, nil, nil, mulErrorf(op, err)
	}
	if c, err = matrix.NewDense[T](ad.Rows(), bd.Cols()); err != nil {
		return nil, nil, nil, mulErrorf(op, err)
	}

	return ad, bd, c, nil
}
