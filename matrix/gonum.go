// SPDX-License-Identifier: MIT
// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Hand a Dense to gonum for factorizations and cross-checks.
//   - Accept any mat.Matrix back as a *Dense with the package's 1-based surface.
//
// Both directions copy; no buffer is shared with gonum.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
//
// gonum forbids zero-sized dense matrices, so an empty m is rejected with
// ErrBadShape.
//
// Errors: ErrNilMatrix, ErrBadShape.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(ctxToGonum, fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}

	// Both layouts are row-major; the Dense buffer copies across as is.
	if d, ok := m.(*Dense); ok {
		buf := make([]float64, len(d.data))
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}

	g := mat.NewDense(r, c, nil)
	var v float64
	var err error
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(ctxToGonum, err)
			}
			g.Set(i-1, j-1, v)
		}
	}

	return g, nil
}

// FromGonum copies any gonum matrix into a new *Dense. Options set the
// numeric policy of the result; under WithValidateNaNInf a non-finite
// element is rejected with ErrNaNInf.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if err = res.Set(i, j, g.At(i-1, j-1)); err != nil {
				return nil, matrixErrorf(ctxFromGonum, err)
			}
		}
	}

	return res, nil
}
