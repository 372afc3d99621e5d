package mergesort

import (
	"sort"
	"testing"
)

const benchElements = 1 << 20

func benchmark(b *testing.B, sortF func([]int64)) {
	src := make([]int64, benchElements)
	original := make([]int64, benchElements)
	prepare(original)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(src, original)
		b.StartTimer()
		sortF(src)
	}
}

func BenchmarkMergeSort(b *testing.B) {
	benchmark(b, Sort[int64])
}

func BenchmarkIterativeSort(b *testing.B) {
	benchmark(b, func(src []int64) { SortIterative(src) })
}

func BenchmarkConcurrentSort(b *testing.B) {
	benchmark(b, func(src []int64) { ConcurrentSort(src) })
}

func BenchmarkNormalSort(b *testing.B) {
	benchmark(b, func(src []int64) {
		sort.Slice(src, func(i, j int) bool { return src[i] < src[j] })
	})
}
