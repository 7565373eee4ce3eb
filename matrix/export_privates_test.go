// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and panic messages to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// PanicEpsilonInvalid_TestOnly exports the WithEpsilon panic message to avoid magic strings in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
