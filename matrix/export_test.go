// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes a read-only snapshot of the resolved Options and the
// panic messages so matrix_test can assert on them without widening the API.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
}

// GatherOptionsSnapshot resolves opts over the defaults and returns a snapshot.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf}
}

// PanicEpsilonInvalid is the message WithEpsilon panics with.
const PanicEpsilonInvalid = panicEpsilonInvalid
