// SPDX-License-Identifier: MIT
// Package matrix - Generator: random and fixed-shape matrix production.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe, and neither is a Generator.
//     Give every producer its own stream via Derive.
package matrix

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer, so consecutive stream ids yield uncorrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Generator produces matrices for one producer.
// It implements the producer-side factory contract: Generate and Sum.
type Generator struct {
	cfg generatorConfig
}

// NewGenerator builds a Generator from options.
//
// AI-Hints:
//   - NewGenerator(WithSeed(42)).Derive(uint64(worker)) per producer goroutine.
func NewGenerator(opts ...Option) *Generator {
	return &Generator{cfg: newGeneratorConfig(opts...)}
}

// Derive returns an independent deterministic Generator for the given stream id.
// It consumes one value from g's RNG, so derivations must happen on a single
// goroutine (the orchestrator does this before spawning producers).
// Complexity: O(1).
func (g *Generator) Derive(stream uint64) *Generator {
	child := g.cfg
	child.rng = rand.New(rand.NewSource(deriveSeed(g.cfg.rng.Int63(), stream)))

	return &Generator{cfg: child}
}

// Generate returns a new matrix for the given mode.
//   - mode == ModeRandom: rows and cols uniform in [1, MaxDim].
//   - mode >= 1: a fixed mode×mode matrix.
//
// Elements are uniform in [1, MaxValue].
//
// Errors:
//   - ErrBadMode for mode < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Generator) Generate(mode int) (*Dense, error) {
	var rows, cols int
	switch {
	case mode < 0:
		return nil, matrixErrorf("Generate", ErrBadMode)
	case mode == ModeRandom:
		rows = 1 + g.cfg.rng.Intn(g.cfg.maxDim)
		cols = 1 + g.cfg.rng.Intn(g.cfg.maxDim)
	default:
		rows, cols = mode, mode
	}

	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("Generate", err)
	}
	for idx := range m.data { // row-major fill order
		m.data[idx] = 1 + g.cfg.rng.Intn(g.cfg.maxValue)
	}

	return m, nil
}

// Sum returns the element sum of a live matrix produced by this Generator.
// Summing a released matrix is an ownership defect and panics.
func (g *Generator) Sum(m *Dense) int {
	return mustSum(m)
}

// mustSum is Sum for callers that hold a live matrix by contract.
func mustSum(m *Dense) int {
	s, err := Sum(m)
	if err != nil {
		panic(err) // ownership violation: caller summed a matrix it does not own
	}

	return s
}
