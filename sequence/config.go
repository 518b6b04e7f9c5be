// SPDX-License-Identifier: MIT
// Package: lvlath-arrays/sequence
//
// config.go — resolved generator configuration.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • newConfig applies options in order (later overrides earlier).
//   • Passed by value to generators; callers never see it.

package sequence

import "math/rand"

// config aggregates all knobs used by generators.
type config struct {
	rng *rand.Rand // nil means "use defaultSeed"
	lo  int        // inclusive lower bound
	hi  int        // inclusive upper bound
}

// newConfig starts from deterministic defaults and applies opts in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng: nil,
		lo:  defaultLo,
		hi:  defaultHi,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns cfg.rng if set, else a fresh stream seeded with defaultSeed.
func (c config) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(defaultSeed))
}
