// Package growth computes and renders the comparison table contrasting
// linear, linearithmic and quadratic growth for a set of input sizes.
package growth

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// DefaultSizes are the input sizes shown by the demonstration.
var DefaultSizes = []int{10, 100, 1000, 10000}

// Row holds the closed-form operation counts for one input size.
type Row struct {
	N            int
	Linear       int
	Linearithmic float64
	Quadratic    int
}

// Measure returns the growth figures for input size n: n itself,
// n*log2(n) and n squared.
func Measure(n int) Row {
	return Row{
		N:            n,
		Linear:       n,
		Linearithmic: float64(n) * math.Log2(float64(n)),
		Quadratic:    n * n,
	}
}

// Table returns one Row per size, in order.
func Table(sizes []int) []Row {
	rows := make([]Row, len(sizes))
	for i, n := range sizes {
		rows[i] = Measure(n)
	}
	return rows
}

// Fprint writes the rows as a fixed-width table, linearithmic values to
// two decimal places.
func Fprint(w io.Writer, rows []Row) {
	fmt.Fprintf(w, "%-15s | %-15s | %-25s | %-15s\n",
		"Input Size (n)", "Linear (n)", "Linearithmic (n log n)", "Quadratic (n²)")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range rows {
		fmt.Fprintf(w, "%-15d | %-15d | %-25.2f | %-15d\n",
			r.N, r.Linear, r.Linearithmic, r.Quadratic)
	}
}
