// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opConvolve2D = "Convolve2D"

// Convolve2D slides kernel over input without padding ("valid" mode) and
// returns the map of windowed dot products:
//
//	out[i,j] = Σ_ki Σ_kj input[i+ki, j+kj] * kernel[ki, kj]
//
// The kernel is not flipped (cross-correlation, as in most image filters).
// The output shape is (ir-kr+1) × (ic-kc+1).
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when the kernel is larger than the input on any axis.
//
// Complexity: O(out_r*out_c*kr*kc).
func Convolve2D[T Float](input, kernel Matrix[T]) (*Dense[T], error) {
	in, err := AsDense(input)
	if err != nil {
		return nil, matrixErrorf(opConvolve2D, err)
	}
	k, err := AsDense(kernel)
	if err != nil {
		return nil, matrixErrorf(opConvolve2D, err)
	}
	if k.r > in.r || k.c > in.c {
		return nil, fmt.Errorf("%s: kernel %dx%d over input %dx%d: %w",
			opConvolve2D, k.r, k.c, in.r, in.c, ErrDimensionMismatch)
	}

	outR, outC := in.r-k.r+1, in.c-k.c+1
	out, err := NewDense[T](outR, outC)
	if err != nil {
		return nil, matrixErrorf(opConvolve2D, err)
	}

	var i, j, ki, kj, base int
	var sum T
	for i = 0; i < outR; i++ {
		for j = 0; j < outC; j++ {
			sum = 0
			for ki = 0; ki < k.r; ki++ {
				base = (i+ki)*in.c + j
				for kj = 0; kj < k.c; kj++ {
					sum += in.data[base+kj] * k.data[ki*k.c+kj]
				}
			}
			out.data[i*outC+j] = sum
		}
	}

	return out, nil
}
