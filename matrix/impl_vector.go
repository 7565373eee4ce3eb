// SPDX-License-Identifier: MIT

// Package matrix - shape-restricted accessors on Dense.
//
// Purpose:
//   - Small helpers optimizers use on vectors: IsVector, X, X1, X2.
//   - Det2 for 2×2 blocks.
//
// Every accessor fails with a wrapped ErrShapePrecondition child when the
// receiver has the wrong shape, so callers can match either the specific
// sentinel (ErrNotScalar, ErrNotPairVector, ErrNotTwoByTwo) or the parent.

package matrix

import "fmt"

const (
	ctxDet2 = "Det2"
	ctxX    = "X"
	ctxX1   = "X1"
	ctxX2   = "X2"
)

// IsVector reports whether m is a row vector or a column vector (Rows()==1 || Cols()==1).
// A 1×1 matrix is both.
func (m *Dense) IsVector() bool {
	return m.r == 1 || m.c == 1
}

// Det2 returns a11·a22 − a12·a21.
//
// The guard rejects a matrix only when BOTH dimensions differ from 2
// (ErrNotTwoByTwo). A 2×k or k×2 matrix passes it:
//   - with k ≥ 2 the determinant of the top-left 2×2 block is returned;
//   - with k == 1 element (2,2) does not exist and ErrOutOfRange is returned.
//
// Complexity: O(1).
func (m *Dense) Det2() (float64, error) {
	if m.r != 2 && m.c != 2 {
		return 0, fmt.Errorf("Dense.%s: %dx%d: %w", ctxDet2, m.r, m.c, ErrNotTwoByTwo)
	}
	a11, err := m.At(1, 1)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxDet2, err)
	}
	a22, err := m.At(2, 2)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxDet2, err)
	}
	a12, err := m.At(1, 2)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxDet2, err)
	}
	a21, err := m.At(2, 1)
	if err != nil {
		return 0, fmt.Errorf("Dense.%s: %w", ctxDet2, err)
	}

	return a11*a22 - a12*a21, nil
}

// X returns the sole element of a 1×1 matrix, or ErrNotScalar.
func (m *Dense) X() (float64, error) {
	if m.r != 1 || m.c != 1 {
		return 0, fmt.Errorf("Dense.%s: %dx%d: %w", ctxX, m.r, m.c, ErrNotScalar)
	}

	return m.data[0], nil
}

// X1 returns the first element of a 2×1 column vector, or ErrNotPairVector.
func (m *Dense) X1() (float64, error) {
	if m.r != 2 || m.c != 1 {
		return 0, fmt.Errorf("Dense.%s: %dx%d: %w", ctxX1, m.r, m.c, ErrNotPairVector)
	}

	return m.data[0], nil
}

// X2 returns the second element of a 2×1 column vector, or ErrNotPairVector.
func (m *Dense) X2() (float64, error) {
	if m.r != 2 || m.c != 1 {
		return 0, fmt.Errorf("Dense.%s: %dx%d: %w", ctxX2, m.r, m.c, ErrNotPairVector)
	}

	return m.data[1], nil
}

// Pair returns (X1, X2) of a 2×1 column vector in one call.
func (m *Dense) Pair() (x1, x2 float64, err error) {
	if x1, err = m.X1(); err != nil {
		return 0, 0, err
	}

	return x1, m.data[1], nil
}
