package mergesort

import "cmp"

// SortIterative returns a sorted copy of src using bottom-up merging with
// an explicit run list instead of recursion, for callers on constrained
// call stacks. The output is identical to MergeSort for every input.
func SortIterative[T cmp.Ordered](src []T) []T {
	if len(src) <= 1 {
		return src
	}
	runs := make([][]T, len(src))
	for i, v := range src {
		runs[i] = []T{v}
	}
	// Each pass halves the number of runs, mirroring one recursion level.
	for len(runs) > 1 {
		merged := make([][]T, 0, (len(runs)+1)/2)
		for i := 0; i+1 < len(runs); i += 2 {
			merged = append(merged, Merge(runs[i], runs[i+1]))
		}
		if len(runs)%2 == 1 {
			merged = append(merged, runs[len(runs)-1])
		}
		runs = merged
	}
	return runs[0]
}
