// Package matrix offers dense, row-major numeric containers for float32 and
// float64 and the element-wise algebra around them.
//
// The matrix package provides:
//
//   - Dense[T], an owning rows×cols buffer with bounds-checked At/Set, a
//     finite-value policy, and a shared Data() slice for kernels.
//   - View[T], a no-copy window into a Dense.
//   - Seeded fixtures (NewRandom, RandomFill) that always take an explicit
//     *rand.Rand.
//   - Add, Sub, Hadamard, Scale, Transpose, Trace, FrobeniusNorm and a
//     valid-mode Convolve2D.
//   - Tolerance comparisons (AllClose, MaxAbsDiff, MaxRelDiff) used to check
//     that different product strategies agree.
//
// Matrix products are implemented in package matmul.
package matrix
