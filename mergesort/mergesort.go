// Package mergesort implements the classic divide-and-conquer merge sort:
// the input is halved until single elements remain (the log n part), then
// sorted halves are combined with a linear scan (the n part).
package mergesort

import "cmp"

// Merge combines two sorted slices into one sorted slice containing all
// elements of both. On ties the left element is taken first, so merging is
// stable with respect to the left/right split. Inputs are only read.
//
// If an input is not sorted the result is the deterministic two-cursor
// merge of it, which may itself be unsorted.
func Merge[T cmp.Ordered](left, right []T) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	// One side is exhausted; the other's suffix is already sorted.
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// MergeSort returns a sorted copy of src without modifying it. Slices of
// length 0 or 1 are returned as-is. The sort is stable and runs in
// O(n log n): recursion depth is ceil(log2 n) with a linear merge per level.
func MergeSort[T cmp.Ordered](src []T) []T {
	if len(src) <= 1 {
		return src
	}
	mid := len(src) / 2
	left := MergeSort(src[:mid])
	right := MergeSort(src[mid:])
	return Merge(left, right)
}

// Sort sorts src in place.
func Sort[T cmp.Ordered](src []T) {
	copy(src, MergeSort(src))
}
