package sequence

import "math/rand"

// Permutation returns 1..n in a deterministic shuffled order.
// The result never contains a repeated value.
//
// Errors: ErrBadSize if n < 1.
//
// Complexity: O(n) time, O(n) memory.
func Permutation(n int, opts ...Option) ([]int, error) {
	if n < minSize {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)

	p := ascending(n, 0)
	shuffle(p, cfg.random())

	return p, nil
}

// OneDuplicate returns a sequence of length n+1 holding every value of 1..n
// once plus a second copy of one of them, all in shuffled order. It also
// returns the repeated value.
//
// The values stay within [1, len-1], so the result satisfies the
// precondition of cycle-detection duplicate finders.
//
// Errors: ErrBadSize if n < 1.
func OneDuplicate(n int, opts ...Option) ([]int, int, error) {
	if n < minSize {
		return nil, 0, ErrBadSize
	}
	cfg := newConfig(opts...)
	rng := cfg.random()

	dup := 1 + rng.Intn(n)
	p := ascending(n, 1)
	p[n] = dup
	shuffle(p, rng)

	return p, dup, nil
}

// ascending returns [1, 2, ..., n] with extra zeroed slots appended.
func ascending(n, extra int) []int {
	p := make([]int, n+extra)
	for i := 0; i < n; i++ {
		p[i] = i + 1
	}

	return p
}

// shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffle(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
