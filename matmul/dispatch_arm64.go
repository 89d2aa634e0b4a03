// SPDX-License-Identifier: MIT

//go:build arm64

package matmul

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	// ASIMD is mandatory on ARMv8, but the flag is still honored.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16
		return
	}
	setScalarMode()
}
