// Package matrix offers a small dense float64 matrix used by the optimize package.
//
// The matrix package provides:
//
//   - Dense, an m×n matrix with row-major storage and 1-based public indices.
//     At/Set address (row, col); AtLinear/SetLinear address a single
//     column-major index k, with k-1 = (col-1)*m + (row-1).
//   - Element-wise and algebraic kernels (Add, Sub, Scale, Div, Mul, Transpose)
//     that accept any Matrix and always return a freshly allocated *Dense.
//   - Vector helpers (IsVector, Mod, X, X1, X2) and the 2×2 determinant Det2.
//   - Conversions to and from gonum's *mat.Dense for interop.
//
// Div follows the historical "scalar over element" convention: Div(A, s)
// yields s / A[i,j], not A[i,j] / s.
//
// All misuse (bad index, shape mismatch, wrong vector shape) is reported
// through sentinel errors; nothing in the public surface panics on user input.
package matrix
