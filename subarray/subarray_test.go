package subarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-arrays/sequence"
	"github.com/katalvlaran/lvlath-arrays/subarray"
)

// TestMaxSum_Literals checks the literal battery against both strategies.
func TestMaxSum_Literals(t *testing.T) {
	tests := []struct {
		nums []int
		want int
	}{
		{[]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, 6},
		{[]int{1}, 1},
		{[]int{5, 4, -1, 7, 8}, 23},
		{[]int{-1}, -1},
		{[]int{-2, 1}, 1},
		{[]int{-2, -1}, -1},
		{[]int{-1, -2}, -1},
		{[]int{1, 2}, 3},
		{[]int{2, 1}, 3},
		{[]int{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		got, err := subarray.MaxSum(tt.nums)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "MaxSum(%v)", tt.nums)

		brute, err := subarray.MaxSumBruteForce(tt.nums)
		require.NoError(t, err)
		assert.Equal(t, tt.want, brute, "MaxSumBruteForce(%v)", tt.nums)
	}
}

// TestMaxSum_EmptyInput verifies both entry points reject empty input.
func TestMaxSum_EmptyInput(t *testing.T) {
	_, err := subarray.MaxSum([]int{})
	assert.ErrorIs(t, err, subarray.ErrEmptyInput)

	_, err = subarray.MaxSumBruteForce[int](nil)
	assert.ErrorIs(t, err, subarray.ErrEmptyInput)

	_, err = subarray.MaxSpan([]float64{}, nil)
	assert.ErrorIs(t, err, subarray.ErrEmptyInput)
}

// TestMaxSum_NaN verifies NaN is rejected and ±Inf is accepted.
func TestMaxSum_NaN(t *testing.T) {
	_, err := subarray.MaxSum([]float64{1, math.NaN(), 2})
	assert.ErrorIs(t, err, subarray.ErrNaNInput)

	got, err := subarray.MaxSum([]float64{-1, math.Inf(1)})
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
}

// TestMaxSum_Floats covers real-valued input.
func TestMaxSum_Floats(t *testing.T) {
	got, err := subarray.MaxSum([]float64{-2.5, 1.5, 2.25, -0.5, 1})
	require.NoError(t, err)
	assert.InDelta(t, 4.25, got, 1e-12)

	got32, err := subarray.MaxSum([]float32{-0.5, -0.25})
	require.NoError(t, err)
	assert.Equal(t, float32(-0.25), got32)
}

// TestMaxSum_Unsigned sums everything for non-negative element types.
func TestMaxSum_Unsigned(t *testing.T) {
	got, err := subarray.MaxSum([]uint8{1, 0, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, uint8(6), got)
}

// TestMaxSum_NarrowUnsignedWraps pins the documented wrapping of sums that
// exceed the element type, and shows that widening restores the true result.
func TestMaxSum_NarrowUnsignedWraps(t *testing.T) {
	got, err := subarray.MaxSum([]uint8{200, 100})
	require.NoError(t, err)
	assert.Equal(t, uint8(200), got, "200+100 wraps to 44 in uint8")

	brute, err := subarray.MaxSumBruteForce([]uint8{200, 100})
	require.NoError(t, err)
	assert.Equal(t, got, brute, "both strategies wrap identically")

	wide, err := subarray.MaxSum([]int64{200, 100})
	require.NoError(t, err)
	assert.Equal(t, int64(300), wide)
}

// TestMaxSum_AgreesWithBruteForce cross-checks Kadane on generated inputs.
func TestMaxSum_AgreesWithBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		n := 1 + int(seed%37)
		nums, err := sequence.Uniform(n, sequence.WithSeed(seed), sequence.WithRange(-20, 20))
		require.NoError(t, err)

		fast, err := subarray.MaxSum(nums)
		require.NoError(t, err)
		slow, err := subarray.MaxSumBruteForce(nums)
		require.NoError(t, err)
		assert.Equal(t, slow, fast, "seed %d nums %v", seed, nums)

		kSpan, err := subarray.MaxSpan(nums, &subarray.Options{Strategy: subarray.Kadane})
		require.NoError(t, err)
		bSpan, err := subarray.MaxSpan(nums, &subarray.Options{Strategy: subarray.BruteForce})
		require.NoError(t, err)
		assert.Equal(t, bSpan, kSpan, "seed %d nums %v", seed, nums)
	}
}

// TestMaxSum_AllNegative checks the result equals the largest single element.
func TestMaxSum_AllNegative(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		nums, err := sequence.Negative(1+int(seed), sequence.WithSeed(seed))
		require.NoError(t, err)

		want := nums[0]
		for _, v := range nums {
			if v > want {
				want = v
			}
		}
		got, err := subarray.MaxSum(nums)
		require.NoError(t, err)
		assert.Equal(t, want, got, "seed %d nums %v", seed, nums)

		span, err := subarray.MaxSpan(nums, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, span.Len(), "all-negative winner is a single element")
		assert.Equal(t, want, nums[span.Start])
	}
}

// TestMaxSum_PureAndIdempotent ensures repeated calls agree and input is untouched.
func TestMaxSum_PureAndIdempotent(t *testing.T) {
	nums := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	orig := append([]int(nil), nums...)

	first, err := subarray.MaxSum(nums)
	require.NoError(t, err)
	second, err := subarray.MaxSum(nums)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, orig, nums, "input must not be modified")
}

// TestMaxSpan_Bounds covers span recovery and the tie-break rule.
func TestMaxSpan_Bounds(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want subarray.Span[int]
	}{
		{"leetcode sample", []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, subarray.Span[int]{Start: 3, End: 6, Sum: 6}},
		{"whole input", []int{5, 4, -1, 7, 8}, subarray.Span[int]{Start: 0, End: 4, Sum: 23}},
		{"least negative", []int{-3, -1, -2}, subarray.Span[int]{Start: 1, End: 1, Sum: -1}},
		{"earliest end wins", []int{3, -3, 3}, subarray.Span[int]{Start: 0, End: 0, Sum: 3}},
		{"earliest start for same end", []int{0, 0, 5}, subarray.Span[int]{Start: 0, End: 2, Sum: 5}},
		{"reset after negative prefix", []int{-3, 0, 5}, subarray.Span[int]{Start: 1, End: 2, Sum: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range []subarray.Strategy{subarray.Kadane, subarray.BruteForce} {
				got, err := subarray.MaxSpan(tt.nums, &subarray.Options{Strategy: s})
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, "strategy %s", s)
			}
		})
	}
}

// TestMaxSpan_BadStrategy rejects unknown strategies.
func TestMaxSpan_BadStrategy(t *testing.T) {
	_, err := subarray.MaxSpan([]int{1}, &subarray.Options{Strategy: subarray.Strategy(9)})
	assert.ErrorIs(t, err, subarray.ErrBadStrategy)
	assert.Equal(t, "unknown", subarray.Strategy(9).String())
}
