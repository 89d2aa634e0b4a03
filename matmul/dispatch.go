// SPDX-License-Identifier: MIT

package matmul

import (
	"os"
	"strconv"
	"unsafe"

	"github.com/katalvlaran/blockmul/matrix"
)

// DispatchLevel names the widest vector unit found on the running CPU.
// It decides the default lane count of the SIMD strategy.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable vector unit; lanes use a 16-byte width.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX/AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON/ASIMD (128-bit).
	DispatchNEON
)

func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar forces scalar-mode width when set to a true value.
const NoSimdEnvVar = "BLOCKMUL_NO_SIMD"

var (
	currentLevel DispatchLevel
	currentWidth int // register width in bytes
)

// Level returns the dispatch level detected at init.
func Level() DispatchLevel { return currentLevel }

// Width returns the detected vector register width in bytes.
func Width() int { return currentWidth }

// NoSimdEnv reports whether BLOCKMUL_NO_SIMD asks for scalar mode.
// Any non-empty value that does not parse as false counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}

	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte lanes even in scalar mode
}

// LaneWidth returns how many T fit in one vector register: 16 float32 or 8
// float64 on AVX-512, 8 float32 or 4 float64 on AVX2, 4 float32 or 2
// float64 on 128-bit units and in scalar mode.
func LaneWidth[T matrix.Float]() int {
	var zero T
	size := sizeOf(zero)
	if size == 0 || currentWidth < size {
		return 1
	}

	return currentWidth / size
}

func sizeOf[T matrix.Float](v T) int { return int(unsafe.Sizeof(v)) }
