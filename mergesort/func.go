package mergesort

// MergeFunc is Merge for element types without a built-in order. less
// reports whether a sorts before b. On ties (neither sorts before the
// other) the left element is taken first.
func MergeFunc[T any](left, right []T, less func(a, b T) bool) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if !less(right[j], left[i]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

// MergeSortFunc returns a sorted copy of src ordered by less. Equal
// elements keep their input order.
func MergeSortFunc[T any](src []T, less func(a, b T) bool) []T {
	if len(src) <= 1 {
		return src
	}
	mid := len(src) / 2
	left := MergeSortFunc(src[:mid], less)
	right := MergeSortFunc(src[mid:], less)
	return MergeFunc(left, right, less)
}
