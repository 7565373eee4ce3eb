// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX);
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape precondition -> index -> dimension mismatch -> numeric policy.

var (
	// ErrBadShape is returned when the requested shape cannot be built
	// (ragged rows, or an empty matrix handed to a backend that forbids it).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (linear, row or column) is outside valid bounds.
	// Public indexers (At/Set/AtLinear/SetLinear) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was written while the matrix
	// enforces a finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrShapePrecondition is the parent of every "wrong shape for this accessor" error.
	ErrShapePrecondition = errors.New("matrix: shape precondition violated")
)

// Shape-specific preconditions. Each wraps ErrShapePrecondition, so
// errors.Is(err, ErrShapePrecondition) matches all of them.
var (
	// ErrNotTwoByTwo is returned by Det2 when neither dimension equals 2.
	ErrNotTwoByTwo = fmt.Errorf("%w: can't apply det2 to a non 2x2 matrix", ErrShapePrecondition)

	// ErrNotScalar is returned by X when the matrix is not 1×1.
	ErrNotScalar = fmt.Errorf("%w: not a 1x1 matrix", ErrShapePrecondition)

	// ErrNotPairVector is returned by X1/X2 when the matrix is not a 2×1 column vector.
	ErrNotPairVector = fmt.Errorf("%w: not a 2x1 column vector", ErrShapePrecondition)
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
