// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// NewIdentity(0) is the empty 0×0 matrix.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		_ = I.Set(i, i, 1.0) // bounds-safe; cannot fail after shape validation
	}

	return I, nil
}

// Eye is an alias for NewIdentity.
func Eye(n int, opts ...Option) (*Dense, error) { return NewIdentity(n, opts...) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newResultLike(m, m.Rows(), m.Cols())
}

// Neg returns −m. Composition of Scale with alpha = −1.
func Neg(m Matrix) (*Dense, error) { return Scale(m, -1) }

// AXPY returns x + alpha·d, the update step of a line search.
// Composition: Scale → Add.
func AXPY(x Matrix, alpha float64, d Matrix) (*Dense, error) {
	step, err := Scale(d, alpha)
	if err != nil {
		return nil, matrixErrorf("AXPY", err)
	}
	res, err := Add(x, step)
	if err != nil {
		return nil, matrixErrorf("AXPY", err)
	}

	return res, nil
}

// Dot returns aᵀb for two column vectors of equal length, computed as the
// 1×1 product (aᵀ·b).X().
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Dot(a, b Matrix) (float64, error) {
	at, err := Transpose(a)
	if err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	p, err := Mul(at, b)
	if err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	v, err := p.X()
	if err != nil {
		return 0, matrixErrorf("Dot", err)
	}

	return v, nil
}

// ---------- Numeric compare ----------

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerance).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b agree element-wise within the absolute
// tolerance from options (DefaultEpsilon unless WithEpsilon is given).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}
