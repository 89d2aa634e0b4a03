// SPDX-License-Identifier: MIT
// Package matmul: sentinel error set.
// Every strategy returns these sentinels wrapped with an operation tag;
// callers match with errors.Is. Kernels never panic on user input.

package matmul

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/blockmul/matrix"
)

var (
	// ErrShapeMismatch is returned when A.Cols() != B.Rows(). No partial
	// result is produced. The wrapped error also matches
	// matrix.ErrDimensionMismatch.
	ErrShapeMismatch = errors.New("matmul: inner dimensions mismatch")

	// ErrUnknownStrategy is returned for a Strategy value or name outside
	// the supported set.
	ErrUnknownStrategy = errors.New("matmul: unknown strategy")
)

// mulErrorf wraps err with the strategy tag, preserving the cause via %w.
func mulErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateOperands checks nil operands and the inner dimension before any
// allocation happens.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil operand.
//   - ErrShapeMismatch (and matrix.ErrDimensionMismatch) when a.Cols != b.Rows.
func validateOperands[T matrix.Float](op string, a, b matrix.Matrix[T]) error {
	err := matrix.ValidateMulCompatible(a, b)
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrDimensionMismatch) {
		return fmt.Errorf("%s: %dx%d * %dx%d: %w: %w",
			op, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrShapeMismatch, matrix.ErrDimensionMismatch)
	}

	return mulErrorf(op, err)
}
