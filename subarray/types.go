// Package subarray defines the number constraint, strategies and result type.
package subarray

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types MaxSum accepts: every signed and
// unsigned integer and both float widths.
//
// Sums are computed in T itself. Narrow types wrap silently when a run's sum
// exceeds their range: MaxSum([]uint8{200, 100}) returns 200, not 300.
// Widen the element type (e.g. convert to []int64) when that matters.
type Number interface {
	constraints.Integer | constraints.Float
}

// Strategy selects the algorithm MaxSpan runs.
//
//   - Kadane     — single running-maximum pass. O(n) time.
//   - BruteForce — every start index, extended rightward. O(n²) time.
//     Kept as a reference for cross-checking Kadane.
type Strategy int

const (
	// Kadane runs the single-pass running-maximum algorithm.
	Kadane Strategy = iota

	// BruteForce enumerates every contiguous run.
	BruteForce
)

// String returns the lower-case strategy name used by the CLI flags.
func (s Strategy) String() string {
	switch s {
	case Kadane:
		return "kadane"
	case BruteForce:
		return "brute"
	default:
		return "unknown"
	}
}

// Options configures MaxSpan.
//
// Fields:
//   - Strategy — algorithm used to find the run (default Kadane).
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns Options{Strategy: Kadane}.
func DefaultOptions() Options {
	return Options{Strategy: Kadane}
}

// Span is a contiguous run nums[Start..End] (both inclusive) and its sum.
type Span[T Number] struct {
	Start int
	End   int
	Sum   T
}

// Len returns the number of elements in the run.
func (s Span[T]) Len() int {
	return s.End - s.Start + 1
}

var (
	// ErrEmptyInput indicates the input sequence has no elements.
	ErrEmptyInput = errors.New("subarray: input sequence must be non-empty")

	// ErrNaNInput indicates a float input contains NaN.
	ErrNaNInput = errors.New("subarray: input sequence contains NaN")

	// ErrBadStrategy indicates Options.Strategy is not a known Strategy.
	ErrBadStrategy = errors.New("subarray: unknown strategy")
)
