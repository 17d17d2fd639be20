// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"io"
)

// Ops is the consumer-side capability set: attempt-multiply, sum, display, free.
// It holds no state and is safe for concurrent use.
type Ops struct{}

// Multiply returns (a×b, true) when a.Cols == b.Rows and (nil, false) otherwise.
// Operands are never mutated or released here.
// Any failure other than a dimension mismatch is an ownership defect and panics.
func (Ops) Multiply(a, b *Dense) (*Dense, bool) {
	c, err := Mul(a, b)
	if errors.Is(err, ErrDimensionMismatch) {
		return nil, false
	}
	if err != nil {
		panic(err)
	}

	return c, true
}

// Sum returns the element sum of m. Panics on a nil or released matrix.
func (Ops) Sum(m *Dense) int { return mustSum(m) }

// Display writes m to w (see the package-level Display).
func (Ops) Display(w io.Writer, m *Dense) error { return Display(w, m) }

// Free releases m's storage.
func (Ops) Free(m *Dense) { m.Free() }
