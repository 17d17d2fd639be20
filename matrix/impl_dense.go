// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major integer buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make ownership visible: Free drops the buffer and every later access reports ErrReleased.
//
// AI-Hints:
//   - Prefer the flat data slice inside package kernels (see impl_linear_algebra.go).
//   - A *Dense handed to a bounded buffer belongs to the buffer until Get returns it.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Free: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxClone = "Clone" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - data == nil marks a released matrix (see Free).
type Dense struct {
	r, c int   // row and column counts (>0)
	data []int // contiguous row-major storage (len == r*c); nil after Free
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows (copied).
// Every row must have the same non-zero length.
//
// Errors:
//   - ErrInvalidDimensions for empty input or ragged rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < m.r; i++ { // fixed row order
		if len(rows[i]) != m.c {
			return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions) // ragged input
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single value.
func (m *Dense) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// Released reports whether Free has already dropped the storage.
func (m *Dense) Released() bool { return m.data == nil }

// indexOf computes the row-major offset or returns a sentinel.
//
// Errors:
//   - ErrReleased when the matrix was freed.
//   - ErrOutOfRange when indices are invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m.data == nil {
		return 0, ErrReleased
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrReleased (wrapped with method and coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange, ErrReleased (wrapped with method and coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy with an independent buffer.
//
// Errors:
//   - ErrReleased when cloning a freed matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if m.data == nil {
		return nil, matrixErrorf(ctxClone, ErrReleased)
	}
	cp := make([]int, len(m.data)) // allocate same length
	copy(cp, m.data)               // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}, nil
}

// Free drops the storage. Later At/Set/Clone report ErrReleased.
// Freeing twice is a no-op; callers detect ownership bugs through Released.
// Complexity: O(1).
func (m *Dense) Free() {
	if m == nil {
		return
	}
	m.data = nil
}

// String provides a readable row-wise dump for diagnostics.
// A released matrix renders as "<released r×c>".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	if m.data == nil {
		return fmt.Sprintf("<released %d×%d>", m.r, m.c)
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
