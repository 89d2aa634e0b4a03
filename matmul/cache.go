// SPDX-License-Identifier: MIT

package matmul

import (
	"math"

	"github.com/katalvlaran/blockmul/matrix"
	"github.com/klauspost/cpuid/v2"
)

const (
	minSuggestedTile = 8
	maxSuggestedTile = 256
)

// TileSizeFor returns the largest multiple of 8 such that three square tiles
// of elemSize-byte elements fit in l1d bytes, clamped to [8, 256].
// Unknown cache sizes (l1d <= 0) yield DefaultTileSize.
func TileSizeFor(l1d, elemSize int) int {
	if l1d <= 0 || elemSize <= 0 {
		return DefaultTileSize
	}
	t := int(math.Sqrt(float64(l1d) / float64(3*elemSize)))
	t -= t % minSuggestedTile

	return min(max(t, minSuggestedTile), maxSuggestedTile)
}

// SuggestTileSize derives a Tiled block edge for T from the L1 data cache
// of the running CPU.
func SuggestTileSize[T matrix.Float]() int {
	var zero T

	return TileSizeFor(cpuid.CPU.Cache.L1D, sizeOf(zero))
}

// CPUInfo summarizes the host facts that drive strategy defaults.
type CPUInfo struct {
	Brand         string
	PhysicalCores int
	L1D, L2       int  // bytes, -1 when unknown
	FMA           bool // x86 FMA3 or FMA4
	NEON          bool // arm64 Advanced SIMD
	Level         DispatchLevel
	Width         int // vector register width in bytes
}

// DescribeCPU reports the detected CPU.
func DescribeCPU() CPUInfo {
	return CPUInfo{
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		L1D:           cpuid.CPU.Cache.L1D,
		L2:            cpuid.CPU.Cache.L2,
		FMA:           cpuid.CPU.Supports(cpuid.FMA3) || cpuid.CPU.Supports(cpuid.FMA4),
		NEON:          cpuid.CPU.Supports(cpuid.ASIMD),
		Level:         Level(),
		Width:         Width(),
	}
}
