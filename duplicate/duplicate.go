package duplicate

// Find returns the first value observed twice while scanning nums from left
// to right. The seen-set lives only for the duration of the call; nums is
// not modified.
//
// Example:
//
//	v, err := Find([]int{1, 3, 4, 2, 2}) // v == 2
//
// Errors: ErrNotFound when every value is distinct. The returned value is
// then the zero value of T and must be ignored.
//
// Values are matched with ==, so float NaNs never match each other:
// Find([]float64{NaN, NaN}) fails with ErrNotFound.
//
// Complexity: O(n) time, O(n) memory.
func Find[T comparable](nums []T) (T, error) {
	seen := make(map[T]struct{}, len(nums))
	for _, v := range nums {
		if _, ok := seen[v]; ok {
			return v, nil
		}
		seen[v] = struct{}{}
	}

	var zero T
	return zero, ErrNotFound
}

// FindAll returns every distinct repeated value, ordered by the index of its
// second occurrence. A value repeated three or more times appears once.
// The result is empty (not nil) when nothing repeats.
//
// Complexity: O(n) time, O(n) memory.
func FindAll[T comparable](nums []T) []T {
	count := make(map[T]int, len(nums))
	out := make([]T, 0)
	for _, v := range nums {
		count[v]++
		if count[v] == 2 {
			out = append(out, v)
		}
	}

	return out
}

// Contains reports whether any value in nums repeats.
func Contains[T comparable](nums []T) bool {
	_, err := Find(nums)

	return err == nil
}

// FindFloyd — duplicate via Floyd's tortoise and hare.
//
// Description:
//
//	With n = len(nums) and every value in [1, n-1], the map i → nums[i]
//	sends n indices into n-1 targets, so some target has two preimages and
//	the walk from index 0 must enter a cycle. The node where the walk joins
//	the cycle has two predecessors: one on the tail, one on the cycle. Its
//	index is therefore a value stored twice.
//
// Algorithm Outline:
//  1. slow = nums[0], fast = nums[nums[0]].
//  2. Advance slow by one and fast by two until they meet.
//  3. Reset slow to 0; advance both by one until they meet again.
//  4. The meeting index is the repeated value.
//
// Which repeat is found depends on the cycle structure, not on scan order;
// use Find when the first-by-scan-order repeat is required.
//
// Errors: ErrValueOutOfRange if len(nums) < 2 or any value lies outside
// [1, len(nums)-1]. A valid input always contains a repeat.
//
// Complexity: O(n) time, O(1) memory. nums is read, never written.
func FindFloyd(nums []int) (int, error) {
	n := len(nums)
	if n < 2 {
		return 0, ErrValueOutOfRange
	}
	for _, v := range nums {
		if v < 1 || v > n-1 {
			return 0, ErrValueOutOfRange
		}
	}

	slow, fast := nums[0], nums[nums[0]]
	for slow != fast {
		slow = nums[slow]
		fast = nums[nums[fast]]
	}

	slow = 0
	for slow != fast {
		slow = nums[slow]
		fast = nums[fast]
	}

	return slow, nil
}
