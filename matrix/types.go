// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels and the generator.
// This file intentionally contains ONLY type declarations and package
// constants; errors and options live in dedicated files.
package matrix

import "fmt"

// Shape is a (rows, cols) pair. Two shapes are multiplication-compatible
// when the left Cols equals the right Rows.
type Shape struct {
	Rows int // number of rows (>0 for live matrices)
	Cols int // number of columns (>0 for live matrices)
}

// Eligible reports whether a matrix of shape s can be multiplied on the right
// by a matrix of shape o (s.Cols == o.Rows).
// Complexity: O(1).
func (s Shape) Eligible(o Shape) bool { return s.Cols == o.Rows }

// String renders the shape as "R×C".
func (s Shape) String() string { return fmt.Sprintf("%d×%d", s.Rows, s.Cols) }

// Generation modes accepted by Generator.Generate.
const (
	// ModeRandom draws both dimensions uniformly from [1, MaxDim].
	ModeRandom = 0
)

// Defaults for the generator (named, no magic numbers).
const (
	DefaultMaxDim   = 4  // upper bound for random rows/cols in ModeRandom
	DefaultMaxValue = 10 // upper bound for random element values (lower bound is 1)
)
