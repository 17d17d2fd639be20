// SPDX-License-Identifier: MIT
// Package matrix_test validates Generator determinism, modes and bounds.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/pcmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateFixedMode checks that mode N yields N×N matrices.
func TestGenerateFixedMode(t *testing.T) {
	g := matrix.NewGenerator(matrix.WithSeed(3))
	for _, mode := range []int{1, 2, 5} {
		m, err := g.Generate(mode)
		require.NoError(t, err)
		require.Equal(t, matrix.Shape{Rows: mode, Cols: mode}, m.Shape())
	}
}

// TestGenerateRandomModeBounds checks dimensions and values stay within the configured ranges.
func TestGenerateRandomModeBounds(t *testing.T) {
	const maxDim, maxValue = 3, 5
	g := matrix.NewGenerator(matrix.WithSeed(11), matrix.WithMaxDim(maxDim), matrix.WithMaxValue(maxValue))

	seen := map[matrix.Shape]bool{}
	for i := 0; i < 500; i++ {
		m, err := g.Generate(matrix.ModeRandom)
		require.NoError(t, err)
		require.GreaterOrEqual(t, m.Rows(), 1)
		require.LessOrEqual(t, m.Rows(), maxDim)
		require.GreaterOrEqual(t, m.Cols(), 1)
		require.LessOrEqual(t, m.Cols(), maxDim)
		seen[m.Shape()] = true

		for _, row := range ToRows(t, m) {
			for _, v := range row {
				require.GreaterOrEqual(t, v, 1)
				require.LessOrEqual(t, v, maxValue)
			}
		}
	}
	assert.Len(t, seen, maxDim*maxDim, "500 draws should hit every shape") // 9 shapes
}

// TestGenerateBadMode ensures negative modes are rejected.
func TestGenerateBadMode(t *testing.T) {
	_, err := matrix.NewGenerator().Generate(-1)
	require.ErrorIs(t, err, matrix.ErrBadMode)
}

// TestGeneratorSeedDeterminism checks same seed ⇒ same stream.
func TestGeneratorSeedDeterminism(t *testing.T) {
	a := matrix.NewGenerator(matrix.WithSeed(42))
	b := matrix.NewGenerator(matrix.WithSeed(42))
	for i := 0; i < 20; i++ {
		ma, err := a.Generate(matrix.ModeRandom)
		require.NoError(t, err)
		mb, err := b.Generate(matrix.ModeRandom)
		require.NoError(t, err)
		require.Equal(t, ToRows(t, ma), ToRows(t, mb))
	}
}

// TestDeriveIndependentStreams checks derived generators are reproducible and distinct.
func TestDeriveIndependentStreams(t *testing.T) {
	draw := func(g *matrix.Generator) [][]int {
		m, err := g.Generate(4)
		require.NoError(t, err)
		return ToRows(t, m)
	}

	base1 := matrix.NewGenerator(matrix.WithSeed(9))
	base2 := matrix.NewGenerator(matrix.WithSeed(9))
	s0a, s1a := base1.Derive(0), base1.Derive(1)
	s0b, s1b := base2.Derive(0), base2.Derive(1)

	require.Equal(t, draw(s0a), draw(s0b)) // same parent + stream ⇒ same output
	require.Equal(t, draw(s1a), draw(s1b))
	require.NotEqual(t, draw(s0a), draw(s1a)) // different streams diverge
}

// TestOptionPanics ensures option constructors reject meaningless values.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxDim(0) })
	require.Panics(t, func() { matrix.WithMaxValue(0) })
	require.Panics(t, func() { matrix.WithRand(nil) })
}

// TestGeneratorSumPanicsOnReleased guards the ownership contract.
func TestGeneratorSumPanicsOnReleased(t *testing.T) {
	g := matrix.NewGenerator()
	m, err := g.Generate(2)
	require.NoError(t, err)
	m.Free()
	require.Panics(t, func() { g.Sum(m) })
}
