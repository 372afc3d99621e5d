// Package sample generates the demonstration's random input data. The
// randomness sits behind the Source interface so tests can substitute a
// deterministic sequence.
package sample

import "math/rand"

// Source yields uniform values in [0, n).
type Source interface {
	Intn(n int) int
}

// New returns a math/rand backed Source.
func New(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Ints returns n draws from src, uniform over [lo, hi] inclusive.
func Ints(src Source, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + src.Intn(hi-lo+1)
	}
	return out
}
