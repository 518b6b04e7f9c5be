// Package subarray finds the contiguous run of a numeric sequence whose
// elements add up to the largest possible sum (the "maximum subarray").
//
// 🚀 What is the maximum subarray?
//
//	Given nums = [-2, 1, -3, 4, -1, 2, 1, -5, 4], the run [4, -1, 2, 1]
//	(indices 3..6) sums to 6 and no other contiguous run beats it.
//	Typical uses:
//	  • best trading window over a series of daily price deltas
//	  • strongest burst in a signal with positive and negative samples
//	  • warm-up exercise for dynamic programming on sequences
//
// ✨ Key features:
//   - Kadane's single pass: O(n) time, O(1) memory (default)
//   - brute-force reference: O(n²) time, O(1) memory, for cross-checks
//   - span recovery: Start/End indices of the winning run (MaxSpan)
//   - generic over every integer and float type (Number)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlath-arrays/subarray"
//
//	best, err := subarray.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	// best == 6
//
//	span, err := subarray.MaxSpan(nums, &subarray.Options{Strategy: subarray.BruteForce})
//	// span.Start, span.End, span.Sum
//
// Contract:
//
//   - Only non-empty runs are considered, so an all-negative input yields
//     its largest (least negative) element.
//   - Empty input fails with ErrEmptyInput; there is no neutral value.
//   - NaN in a float input fails with ErrNaNInput. ±Inf propagates by IEEE rules.
//   - Integer sums use Go's wrapping arithmetic; overflow is not detected.
//   - The input slice is never modified or retained.
//
// Performance:
//
//   - Kadane:     O(n) time, O(1) memory
//   - BruteForce: O(n²) time, O(1) memory; impractical beyond n ≈ 10⁴
package subarray
