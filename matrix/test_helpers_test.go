// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and the generator.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pcmatrix/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a *Dense from literal rows or fails the test.
//
// AI-Hints:
//   - Prefer for small exact-equality tests; integer data compares with require.Equal.
func MustRows(t testing.TB, rows ...[]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// ToRows EXTRACTS the contents of m as [][]int for comparisons.
func ToRows(t testing.TB, m *matrix.Dense) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		out[i] = make([]int, m.Cols())
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// naiveMul is the textbook i→j→k product used as an oracle for matrix.Mul.
func naiveMul(a, b [][]int) [][]int {
	r, n, c := len(a), len(b), len(b[0])
	out := make([][]int, r)
	for i := 0; i < r; i++ {
		out[i] = make([]int, c)
		for j := 0; j < c; j++ {
			for k := 0; k < n; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
