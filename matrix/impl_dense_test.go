// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4) // 3x4 zero matrix

	require.Equal(t, 3, m.Rows())                                 // rows
	require.Equal(t, 4, m.Cols())                                 // cols
	require.Equal(t, matrix.Shape{Rows: 3, Cols: 4}, m.Shape()) // packed shape
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1)                          // row past end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7)) // write (1,2)
	v, err := m.At(1, 2)               // read it back
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

// TestNewFromRows checks literal construction and ragged-row rejection.
func TestNewFromRows(t *testing.T) {
	m := MustRows(t, []int{1, 2, 3}, []int{4, 5, 6})
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, ToRows(t, m)) // row-major round trip

	_, err := matrix.NewFromRows([][]int{{1, 2}, {3}})   // ragged
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected

	_, err = matrix.NewFromRows(nil)                     // empty
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // rejected
}

// TestCloneIndependence ensures a clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, []int{1, 2})
	cp, err := m.Clone()
	require.NoError(t, err)

	require.NoError(t, cp.Set(0, 0, 9)) // mutate clone only
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v) // original untouched
}

// TestFreeReleasesStorage verifies the ownership contract of Free.
func TestFreeReleasesStorage(t *testing.T) {
	m := MustRows(t, []int{1, 2}, []int{3, 4})
	require.False(t, m.Released())

	m.Free()
	require.True(t, m.Released())                       // storage gone
	require.Equal(t, 2, m.Rows())                       // shape stays readable for diagnostics
	_, err := m.At(0, 0)                                // read after free
	require.ErrorIs(t, err, matrix.ErrReleased)         // reported, not a panic
	require.ErrorIs(t, m.Set(0, 0, 1), matrix.ErrReleased)
	_, err = m.Clone()
	require.ErrorIs(t, err, matrix.ErrReleased)
	require.Equal(t, "<released 2×2>", m.String())

	m.Free() // second free is a no-op
	require.True(t, m.Released())
}

// TestString checks the diagnostic dump format.
func TestString(t *testing.T) {
	m := MustRows(t, []int{1, 2}, []int{3, 4})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
