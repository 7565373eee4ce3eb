// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset formula (i-1)*cols + (j-1).
//   - Expose 1-based (row, col) accessors and a 1-based column-major linear accessor.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense/NewFilled: O(r*c); At/Set/AtLinear/SetLinear: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxAtLinear  = "AtLinear"  // method tag used in error wrappers
	ctxSetLinear = "SetLinear" // method tag used in error wrappers
	ctxFromRows  = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// linearErrorf is the single-index counterpart of denseErrorf.
func linearErrorf(method string, k int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, k, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = (i-1)*c + (j-1)).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy from opts.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve options and set numeric policy.
//
// Behavior highlights:
//   - Empty shapes (0×0, 0×n, m×0) are legal and carry a zero-length buffer.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// make() zero-fills deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFilled creates an r×c matrix with every element set to value.
// Under WithValidateNaNInf a non-finite value is rejected with ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFilled(rows, cols int, value float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(value) && len(m.data) > 0 {
		return nil, denseErrorf(ctxSet, 1, 1, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = value
	}

	return m, nil
}

// NewVector builds a len(values)×1 column vector holding a copy of values.
// A nil or empty slice yields a 0×1 matrix.
//
// Complexity: Time O(n), Space O(n).
func NewVector(values []float64, opts ...Option) *Dense {
	o := gatherOptions(opts...)
	buf := make([]float64, len(values))
	copy(buf, values) // column vector: row-major and column-major coincide

	return &Dense{r: len(values), c: 1, data: buf, validateNaNInf: o.validateNaNInf}
}

// NewFromRows builds a matrix from row-major rows (rows[i] is row i+1).
// MAIN DESCRIPTION:
//   - Copies the input; later changes to rows do not affect the result.
//
// Behavior highlights:
//   - Every row must have the same length as rows[0]; a ragged input is
//     rejected with ErrBadShape instead of being read out of bounds.
//   - An empty outer slice yields a 0×0 matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0, opts...)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i+1, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the number of elements, Rows()*Cols().
// Complexity: O(1).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset of the 1-based (row, col) or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	return (row-1)*m.c + (col - 1), nil
}

// linearOffset maps the 1-based column-major index k onto the row-major buffer.
// k selects row ((k-1) mod r)+1 and column ((k-1) div r)+1.
func (m *Dense) linearOffset(k int) (int, error) {
	if k < 1 || k > len(m.data) {
		return 0, ErrOutOfRange // also covers r==0, so the division below is safe
	}
	row := (k - 1) % m.r
	col := (k - 1) / m.r

	return row*m.c + col, nil
}

// At returns the value at the 1-based (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at the 1-based (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when the finite-only policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AtLinear returns the element at the 1-based column-major index k.
// For a 2×2 matrix, k = 1,2,3,4 visits a11, a21, a12, a22.
//
// Errors:
//   - ErrOutOfRange when k∉[1, Len()].
func (m *Dense) AtLinear(k int) (float64, error) {
	if m == nil {
		return 0, linearErrorf(ctxAtLinear, k, ErrNilMatrix)
	}
	off, err := m.linearOffset(k)
	if err != nil {
		return 0, linearErrorf(ctxAtLinear, k, err)
	}

	return m.data[off], nil
}

// SetLinear stores v at the 1-based column-major index k.
//
// Errors:
//   - ErrOutOfRange when k∉[1, Len()]; ErrNaNInf under the finite-only policy.
func (m *Dense) SetLinear(k int, v float64) error {
	if m == nil {
		return linearErrorf(ctxSetLinear, k, ErrNilMatrix)
	}
	off, err := m.linearOffset(k)
	if err != nil {
		return linearErrorf(ctxSetLinear, k, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return linearErrorf(ctxSetLinear, k, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Values returns a copy of all elements in column-major order, the order
// AtLinear walks. For a column vector this is simply its entries.
// Complexity: O(r*c).
func (m *Dense) Values() []float64 {
	out := make([]float64, 0, len(m.data))
	for j := 0; j < m.c; j++ {
		for i := 0; i < m.r; i++ {
			out = append(out, m.data[i*m.c+j])
		}
	}

	return out
}

// Copy returns a deep copy as a concrete *Dense (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The dynamic type of the result is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.Copy() }

// String renders matrix rows as lines with comma-separated values:
//
//	[1, 2]
//	[3, 4]
//
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// newResultLike allocates an r×c result carrying the numeric policy of src
// when src is a *Dense. Kernels use it so policy follows the left operand.
func newResultLike(src Matrix, rows, cols int) (*Dense, error) {
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := src.(*Dense); ok {
		res.validateNaNInf = d.validateNaNInf
	}

	return res, nil
}

// sumSquares accumulates Σ v² over m in column-major order.
func (m *Dense) sumSquares() float64 {
	sum := NormZero
	var i, j int
	var v float64
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			v = m.data[i*m.c+j]
			sum += v * v
		}
	}

	return sum
}

// Mod returns the Euclidean norm √(Σ v²) over all elements treated as one
// flat sequence. It is defined for any shape; 0 for an empty matrix.
//
// Complexity: O(r*c).
func (m *Dense) Mod() float64 {
	return math.Sqrt(m.sumSquares())
}
