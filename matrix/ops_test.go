// Package matrix_test covers Display and the Ops capability set.
package matrix_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestDisplayFormat pins the fixed-width row layout.
func TestDisplayFormat(t *testing.T) {
	var buf bytes.Buffer
	m := MustRows(t, []int{1, 22}, []int{333, 4})

	require.NoError(t, matrix.Display(&buf, m))
	require.Equal(t, "|    1   22 |\n|  333    4 |\n", buf.String())
}

// TestDisplayReleased ensures freed matrices are reported, not printed.
func TestDisplayReleased(t *testing.T) {
	var buf bytes.Buffer
	m := MustDense(t, 1, 1)
	m.Free()

	require.ErrorIs(t, matrix.Display(&buf, m), matrix.ErrReleased)
	require.Zero(t, buf.Len()) // nothing written
}

// TestOpsMultiply checks accept/reject semantics of the consumer capability.
func TestOpsMultiply(t *testing.T) {
	var ops matrix.Ops
	a := MustRows(t, []int{1, 2})      // 1×2
	b := MustRows(t, []int{3}, []int{4}) // 2×1

	c, ok := ops.Multiply(a, b)
	require.True(t, ok)
	require.Equal(t, [][]int{{11}}, ToRows(t, c))

	c, ok = ops.Multiply(a, a) // 1×2 · 1×2
	require.False(t, ok)
	require.Nil(t, c)
	require.False(t, a.Released()) // rejection leaves operands alone
}

// TestOpsMultiplyPanicsOnReleased guards against multiplying a freed operand.
func TestOpsMultiplyPanicsOnReleased(t *testing.T) {
	var ops matrix.Ops
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 2)
	ops.Free(b)

	require.True(t, b.Released())
	require.Panics(t, func() { ops.Multiply(a, b) })
}

// TestOpsSumAndDisplay checks the remaining delegations.
func TestOpsSumAndDisplay(t *testing.T) {
	var ops matrix.Ops
	var buf bytes.Buffer
	m := MustRows(t, []int{2, 3})

	require.Equal(t, 5, ops.Sum(m))
	require.NoError(t, ops.Display(&buf, m))
	require.Equal(t, "|    2    3 |\n", buf.String())
}
