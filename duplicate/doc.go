// Package duplicate locates repeated values in a sequence.
//
// 🚀 Operations
//
//	Find       — first repeat seen in a left-to-right scan (seen-set).
//	FindFloyd  — a repeat via Floyd's cycle detection, O(1) memory.
//	FindAll    — every repeated value, in order of its second occurrence.
//	Contains   — whether any value repeats.
//
// Tie-break contract (Find, FindAll):
//
//	When several distinct values repeat, scan order decides, not numeric
//	order: Find returns the value whose second occurrence has the smallest
//	index. For [3, 1, 1, 3] it returns 1.
//
// FindFloyd treats nums as a function i → nums[i] over indices 0..n-1 and
// returns the entry of the cycle reachable from index 0. It needs every value
// in [1, n-1] and may return a different repeat than Find when several values
// repeat: for [1, 3, 3, 1] Find returns 3 while FindFloyd returns 1.
//
// Errors:
//
//	ErrNotFound        — no value repeats (also for empty and 1-element input).
//	ErrValueOutOfRange — FindFloyd precondition violated.
//
// Complexity:
//
//	Find, FindAll, Contains — O(n) time, O(n) memory.
//	FindFloyd               — O(n) time, O(1) memory.
package duplicate
