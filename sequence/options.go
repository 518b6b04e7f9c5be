// SPDX-License-Identifier: MIT
// Package: lvlath-arrays/sequence
//
// options.go — functional options for the generators.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package sequence

import "math/rand"

// Option customizes a generator by mutating its config before use.
type Option func(*config)

// WithSeed seeds a new *rand.Rand. Seed 0 maps to the package default seed,
// so the zero value still produces a stable stream.
func WithSeed(seed int64) Option {
	if seed == 0 {
		seed = defaultSeed
	}
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shares an explicit RNG stream across generator calls.
// Panics on nil. A *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the inclusive value bounds [lo, hi]. Panics if lo > hi.
// Negative uses only lo; its upper bound is always -1.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("sequence: WithRange(lo>hi)")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}
