// SPDX-License-Identifier: MIT
// Package matrix provides the integer kernels used by the consumers:
// matrix multiplication and element summation. All functions perform strict
// fail-fast validation and return wrapped sentinels on bad input.
//
// Notes:
//   - Kernels never mutate their operands; results are freshly allocated.
//   - Loop orders are fixed, so results are deterministic.

package matrix

// Operation name constants for unified error wrapping.
const (
	opMul = "Mul"
	opSum = "Sum"
)

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (live) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides, skipping zero A[i,k].
//
// Returns:
//   - *Dense: new matrix C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 int
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j.
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // contributes nothing
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Sum returns the sum of all elements of m.
//
// Errors:
//   - ErrNilMatrix, ErrReleased.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Sum(m *Dense) (int, error) {
	if err := ValidateLive(m); err != nil {
		return 0, matrixErrorf(opSum, err)
	}
	total := 0
	for _, v := range m.data { // flat 0..n-1 walk
		total += v
	}

	return total, nil
}
