// SPDX-License-Identifier: MIT
// Package: matrix
//
// options.go: functional options for Generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*generatorConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed in tests so produced sums are reproducible.
//   • WithMaxDim only affects ModeRandom; fixed modes ignore it.

package matrix

import "math/rand"

// Option customizes a Generator before it is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// generatorConfig aggregates all generator knobs. Later options override earlier ones.
type generatorConfig struct {
	rng      *rand.Rand // nil → seeded from defaultRNGSeed
	maxDim   int        // ModeRandom upper bound for rows/cols
	maxValue int        // element values drawn from [1, maxValue]
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Seed 0 maps to defaultRNGSeed, like rngFromSeed.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
// The Generator takes ownership: do not share r with other goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("matrix: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithMaxDim bounds random dimensions to [1, n]. Panics if n < 1.
func WithMaxDim(n int) Option {
	if n < 1 {
		panic("matrix: WithMaxDim(n<1)")
	}
	return func(c *generatorConfig) {
		c.maxDim = n
	}
}

// WithMaxValue bounds element values to [1, v]. Panics if v < 1.
func WithMaxValue(v int) Option {
	if v < 1 {
		panic("matrix: WithMaxValue(v<1)")
	}
	return func(c *generatorConfig) {
		c.maxValue = v
	}
}

// newGeneratorConfig applies options in order over deterministic defaults.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		maxDim:   DefaultMaxDim,
		maxValue: DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0) // deterministic fallback
	}

	return cfg
}
