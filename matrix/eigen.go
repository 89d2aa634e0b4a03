// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"slices"
)

const (
	opEigen = "SymmetricEigenvalues"

	// DefaultMaxSweeps caps the cyclic Jacobi sweeps of SymmetricEigenvalues.
	DefaultMaxSweeps = 64

	// jacobiTol is the off-diagonal Frobenius mass, relative to ‖A‖_F, at
	// which the sweeps stop.
	jacobiTol = 1e-12
)

// SymmetricEigenvalues returns the eigenvalues of a real symmetric matrix in
// ascending order, using cyclic Jacobi rotations on a float64 copy.
//
// MAIN DESCRIPTION:
//   - Each sweep visits every (p,q), p<q, once and applies the rotation
//     A ← JᵀAJ that zeroes A[p,q].
//   - Iteration stops once the off-diagonal mass Σ_{i≠j} A[i,j]² drops below
//     (1e-12 · ‖A‖_F)².
//
// Behavior highlights:
//   - Symmetry is checked with the WithEpsilon tolerance (DefaultEpsilon):
//     |m[i,j]-m[j,i]| <= eps.
//   - m is never modified.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotSymmetric.
//   - ErrNoConvergence after DefaultMaxSweeps sweeps.
//
// Complexity:
//   - Time O(n³) per sweep, Space O(n²).
func SymmetricEigenvalues[T Float](m Matrix[T], opts ...Option) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	src, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	eps := gatherOptions(opts...).eps

	// Stage 1: symmetry check and float64 working copy
	a := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*n+j] = float64(src.data[i*n+j])
			if j > i && math.Abs(float64(src.data[i*n+j])-float64(src.data[j*n+i])) > eps {
				return nil, matrixErrorf(opEigen, ErrNotSymmetric)
			}
		}
	}

	var total float64
	for _, v := range a {
		total += v * v
	}
	stop := jacobiTol * jacobiTol * total

	// Stage 2: cyclic sweeps
	var (
		p, q, k             int
		apq, theta, t, c, s float64
		akp, akq            float64
		converged           bool
	)
	for sweep := 0; sweep < DefaultMaxSweeps; sweep++ {
		if offDiagonal(a, n) <= stop {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a[p*n+q]
				if apq == 0 {
					continue
				}
				theta = (a[q*n+q] - a[p*n+p]) / (2 * apq)
				t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
				c = 1 / math.Sqrt(t*t+1)
				s = t * c

				// columns: A ← AJ
				for k = 0; k < n; k++ {
					akp, akq = a[k*n+p], a[k*n+q]
					a[k*n+p] = c*akp - s*akq
					a[k*n+q] = s*akp + c*akq
				}
				// rows: A ← JᵀA
				for k = 0; k < n; k++ {
					akp, akq = a[p*n+k], a[q*n+k]
					a[p*n+k] = c*akp - s*akq
					a[q*n+k] = s*akp + c*akq
				}
				a[p*n+q], a[q*n+p] = 0, 0
			}
		}
	}
	if !converged && offDiagonal(a, n) > stop {
		return nil, matrixErrorf(opEigen, ErrNoConvergence)
	}

	eig := make([]float64, n)
	for i = 0; i < n; i++ {
		eig[i] = a[i*n+i]
	}
	slices.Sort(eig)

	return eig, nil
}

// offDiagonal returns Σ_{i≠j} a[i,j]².
func offDiagonal(a []float64, n int) float64 {
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return sum
}
