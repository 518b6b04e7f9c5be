// Package sequence generates deterministic integer sequences for tests,
// benchmarks, examples and the lvlarrays CLI.
//
// Every generator is a pure function of (n, options): the same seed always
// yields the same slice, on every platform. There are no globals and no
// time-based seeding.
//
// Generators:
//
//   - Uniform      — n values drawn uniformly from [lo, hi] (default [-100, 100]).
//   - Negative     — n values drawn uniformly from [lo, -1].
//   - Permutation  — 1..n in shuffled order; contains no duplicate.
//   - OneDuplicate — 1..n shuffled plus one extra copy of a single value,
//     length n+1; exactly one value repeats, exactly twice.
//
// Options:
//
//	seq, err := sequence.Uniform(1000, sequence.WithSeed(42), sequence.WithRange(-50, 50))
//
// Option constructors validate their arguments and panic on programmer
// errors (nil *rand.Rand, lo > hi). Generators never panic; invalid sizes
// or ranges are reported through ErrBadSize and ErrBadRange.
package sequence
