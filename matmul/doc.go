// Package matmul multiplies dense matrices with a selectable strategy.
//
// All strategies compute C = A×B for any A (m×k) and B (k×n) held in
// matrix.Dense storage and agree within floating-point tolerance:
//
//	naive       i-j-p triple loop; the correctness reference
//	tiled       i/j/k blocking with WithTileSize (default 64)
//	transposed  one explicit Bᵀ, then row-by-row dot products
//	simd        lane-parallel inner products with a scalar remainder
//	strassen    seven-product recursion above WithMinSize (default 64),
//	            naive below it and for odd sizes
//
// Every call is synchronous, single-threaded and returns a fresh matrix;
// operands are never modified and no state is shared between calls.
// A mismatched inner dimension fails with ErrShapeMismatch before any work
// is done.
//
// The SIMD lane count defaults to the register width detected at startup
// (see Level and LaneWidth); set BLOCKMUL_NO_SIMD=1 to force the 16-byte
// scalar-mode width.
package matmul
