package sequence

import "math/rand"

// Uniform returns n integers drawn uniformly from the configured [lo, hi].
//
// Errors:
//   - ErrBadSize  — n < 1.
//   - ErrBadRange — hi-lo+1 does not fit in an int64.
//
// Complexity: O(n) time, O(n) memory.
func Uniform(n int, opts ...Option) ([]int, error) {
	if n < minSize {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)

	return draw(n, cfg.lo, cfg.hi, cfg.random())
}

// Negative returns n strictly negative integers drawn from [lo, -1], where
// lo comes from WithRange (default -100). Useful for checking that a
// maximum-subarray search returns the largest single element.
//
// Errors:
//   - ErrBadSize  — n < 1.
//   - ErrBadRange — lo ≥ 0.
func Negative(n int, opts ...Option) ([]int, error) {
	if n < minSize {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	if cfg.lo > negativeHi {
		return nil, ErrBadRange
	}

	return draw(n, cfg.lo, negativeHi, cfg.random())
}

// draw fills a fresh slice with values from [lo, hi].
func draw(n, lo, hi int, rng *rand.Rand) ([]int, error) {
	width := int64(hi) - int64(lo) + 1
	if width <= 0 {
		return nil, ErrBadRange
	}

	out := make([]int, n)
	for i := range out {
		out[i] = lo + int(rng.Int63n(width))
	}

	return out, nil
}
