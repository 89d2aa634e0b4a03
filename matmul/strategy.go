// SPDX-License-Identifier: MIT

package matmul

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/samber/lo"
)

// Strategy selects the multiplication algorithm used by Multiply.
type Strategy int

const (
	// StrategyNaive is the i-j-p triple loop reference.
	StrategyNaive Strategy = iota
	// StrategyTiled blocks i, j and k by the tile size.
	StrategyTiled
	// StrategyTransposed multiplies against an explicit Bᵀ.
	StrategyTransposed
	// StrategySIMD splits the inner product across vector lanes.
	StrategySIMD
	// StrategyStrassen recurses with seven products above the threshold.
	StrategyStrassen
)

var strategyNames = map[Strategy]string{
	StrategyNaive:      "naive",
	StrategyTiled:      "tiled",
	StrategyTransposed: "transposed",
	StrategySIMD:       "simd",
	StrategyStrassen:   "strassen",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Strategies returns every supported strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyNaive, StrategyTiled, StrategyTransposed, StrategySIMD, StrategyStrassen}
}

// StrategyNames returns the lower-case names of Strategies(), in order.
func StrategyNames() []string {
	return lo.Map(Strategies(), func(s Strategy, _ int) string { return s.String() })
}

// ParseStrategy maps a name (case-insensitive, surrounding spaces ignored)
// to its Strategy. Unknown names return ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	s, ok := lo.FindKey(strategyNames, want)
	if !ok {
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}

	return s, nil
}

// Multiply computes C = A×B with strategy s.
//
// Errors:
//   - ErrUnknownStrategy for an unsupported s.
//   - whatever the selected strategy reports (matrix.ErrNilMatrix, ErrShapeMismatch).
func Multiply[T matrix.Float](s Strategy, a, b matrix.Matrix[T], opts ...Option) (*matrix.Dense[T], error) {
	switch s {
	case StrategyNaive:
		return Naive(a, b, opts...)
	case StrategyTiled:
		return Tiled(a, b, opts...)
	case StrategyTransposed:
		return Transposed(a, b, opts...)
	case StrategySIMD:
		return SIMD(a, b, opts...)
	case StrategyStrassen:
		return Strassen(a, b, opts...)
	default:
		return nil, fmt.Errorf("Multiply(%s): %w", s, ErrUnknownStrategy)
	}
}
