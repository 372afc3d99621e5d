package mergesort

import (
	"cmp"
	"sync"
)

// Below this length a goroutine costs more than it saves.
const concurrentCutoff = 1 << 12

// ConcurrentSort returns a sorted copy of src, sorting the two halves in
// parallel. The halves are disjoint subslices so the recursive calls share
// nothing; a WaitGroup joins them before the final merge. Small inputs fall
// back to the sequential sort. The output is identical to MergeSort.
func ConcurrentSort[T cmp.Ordered](src []T) []T {
	if len(src) < concurrentCutoff {
		return MergeSort(src)
	}
	mid := len(src) / 2

	var left []T
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		left = ConcurrentSort(src[:mid])
	}()
	right := ConcurrentSort(src[mid:])
	wg.Wait()

	return Merge(left, right)
}
