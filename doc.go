// Package blockmul is a small engine for dense matrix multiplication that
// puts five strategies side by side and checks that they agree.
//
// What is blockmul?
//
//	A generic (float32/float64) library plus a CLI that brings together:
//		• Naive triple loop, the reference every other strategy is checked against
//		• Tiled (cache-blocked) multiply with a tile size derived from L1D
//		• Transposed-B multiply for unit-stride inner products
//		• SIMD-style lane accumulation sized by the detected vector width
//		• Strassen recursion over quadrant views with a naive base case
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/  - Dense and View containers, element-wise ops, Transpose, Convolve2D
//	matmul/  - the strategies, dispatch level detection, tolerances
//	config/  - viper + validator configuration of a verification run
//	compare/ - cross-checks every strategy against Naive and renders a table
//	log/     - process-wide zap logger with optional rotating file
//	cmd/     - the blockmul command (multiply, compare, info, version)
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
//	b, _ := matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8})
//	c, _ := matmul.Multiply[float64](matmul.StrategyStrassen, a, b)
//	fmt.Print(c) // [19, 22]\n[43, 50]\n
//
// Get started:
//
//	go install github.com/katalvlaran/blockmul/cmd/blockmul@latest
//	blockmul compare --sizes=64,128 --precision=float32
package blockmul
