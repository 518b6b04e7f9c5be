package subarray

// MaxSum — maximum sum of a contiguous, non-empty run (Kadane).
//
// Description:
//
//	Scans nums once, keeping the best sum of a run that ends at the
//	current index. Whenever that running sum drops below zero it is reset,
//	because a negative prefix can only lower the sum of any run extended
//	from it. The global best is seeded from the first element's run, so no
//	-Inf or MinInt sentinel is involved.
//
// Algorithm Outline:
//  1. cur = 0, best = undefined.
//  2. For i = 0..n-1:
//     cur += nums[i]
//     if i == 0 or cur > best: best = cur
//     if cur < 0: cur = 0
//  3. Return best.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput — len(nums) == 0.
//   - ErrNaNInput   — a float element is NaN.
func MaxSum[T Number](nums []T) (T, error) {
	if err := validate(nums); err != nil {
		var zero T
		return zero, err
	}

	return kadane(nums).Sum, nil
}

// MaxSumBruteForce returns the same value as MaxSum by summing every run
// nums[i..j]. For each start index i the run is extended rightward one
// element at a time and the best sum is updated after each extension.
//
// It exists to cross-check MaxSum; at O(n²) it is too slow for inputs much
// larger than 10⁴ elements.
//
// Errors: ErrEmptyInput, ErrNaNInput.
func MaxSumBruteForce[T Number](nums []T) (T, error) {
	if err := validate(nums); err != nil {
		var zero T
		return zero, err
	}

	return bruteForce(nums).Sum, nil
}

// MaxSpan returns the winning run's bounds together with its sum.
// A nil opts means DefaultOptions().
//
// When several runs share the maximal sum, the one with the smallest End
// wins, and among those the one with the smallest Start. Both strategies
// apply this rule, so they return identical spans for integer input.
//
// Example:
//
//	span, _ := MaxSpan([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, nil)
//	// span == Span[int]{Start: 3, End: 6, Sum: 6}
//
// Errors: ErrEmptyInput, ErrNaNInput, ErrBadStrategy.
func MaxSpan[T Number](nums []T, opts *Options) (Span[T], error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Strategy != Kadane && o.Strategy != BruteForce {
		return Span[T]{}, ErrBadStrategy
	}
	if err := validate(nums); err != nil {
		return Span[T]{}, err
	}

	if o.Strategy == BruteForce {
		return bruteForce(nums), nil
	}

	return kadane(nums), nil
}

// validate rejects empty input and NaN elements.
func validate[T Number](nums []T) error {
	if len(nums) == 0 {
		return ErrEmptyInput
	}
	for _, x := range nums {
		// Only NaN is unequal to itself; always false for integer T.
		if x != x {
			return ErrNaNInput
		}
	}

	return nil
}

// kadane assumes len(nums) > 0.
func kadane[T Number](nums []T) Span[T] {
	var (
		best  Span[T]
		cur   T
		start int
	)
	for i, x := range nums {
		cur += x
		if i == 0 || cur > best.Sum {
			best = Span[T]{Start: start, End: i, Sum: cur}
		}
		// Never true for unsigned T.
		if cur < 0 {
			cur = 0
			start = i + 1
		}
	}

	return best
}

// bruteForce assumes len(nums) > 0.
func bruteForce[T Number](nums []T) Span[T] {
	var best Span[T]
	for i := range nums {
		var sum T
		for j := i; j < len(nums); j++ {
			sum += nums[j]
			first := i == 0 && j == 0
			if first || sum > best.Sum || (sum == best.Sum && j < best.End) {
				best = Span[T]{Start: i, End: j, Sum: sum}
			}
		}
	}

	return best
}
