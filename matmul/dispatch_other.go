// SPDX-License-Identifier: MIT

//go:build !amd64 && !arm64

package matmul

func init() {
	setScalarMode()
}
