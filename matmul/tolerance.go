// SPDX-License-Identifier: MIT

package matmul

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/blockmul/matrix"
)

// DefaultRelTolerance64 is the relative tolerance floor for float64 results.
const DefaultRelTolerance64 = 1e-9

// tolScale multiplies eps*sqrt(k); Strassen's extra additions need the headroom.
const tolScale = 32

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value.
func Epsilon[T matrix.Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return float64(math32.Nextafter(1, 2) - 1)
	}

	return math.Nextafter(1, 2) - 1
}

// Tolerance returns the relative tolerance used to accept two strategies'
// results over an inner dimension k: tolScale*eps*sqrt(k), and never below
// DefaultRelTolerance64 for float64.
func Tolerance[T matrix.Float](k int) float64 {
	tol := tolScale * Epsilon[T]() * math.Sqrt(float64(max(k, 1)))
	var zero T
	if _, ok := any(zero).(float32); !ok {
		tol = math.Max(tol, DefaultRelTolerance64)
	}

	return tol
}
