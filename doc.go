// Package lvlarrays is a small collection of pure algorithms over in-memory
// numeric sequences, each living in its own package with a documented
// contract, complexity and a battery of example-based checks.
//
// 🚀 What's inside?
//
//	subarray/  — maximum sum of a contiguous run: Kadane O(n), brute force
//	             O(n²) for cross-checks, span recovery
//	duplicate/ — repeated values: seen-set scan, Floyd cycle detection,
//	             all repeats in scan order
//	sequence/  — deterministic fixture generators for tests and benchmarks
//	cmd/lvlarrays — CLI running every operation plus the example battery
//
// ✨ Guarantees
//
//   - Pure functions: no globals, no I/O, no goroutines; inputs are never
//     modified or retained.
//   - Explicit failures: sentinel errors checked with errors.Is, never a
//     silently wrong value.
//
// Quick example:
//
//	best, _ := subarray.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}) // 6
//	dup, _ := duplicate.Find([]int{1, 3, 4, 2, 2})                  // 2
//
//	go get github.com/katalvlaran/lvlath-arrays
package lvlarrays
