// Command linearithmic-time demonstrates merge sort and contrasts
// O(n log n) growth against linear and quadratic growth.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/charlesakinnurun/linearithmic-time/growth"
	"github.com/charlesakinnurun/linearithmic-time/mergesort"
	"github.com/charlesakinnurun/linearithmic-time/sample"
)

var heading = color.New(color.FgCyan, color.Bold)

func main() {
	heading.Println("----- Linearithmic Time Complexity O(n log n) -----")

	src := sample.New(time.Now().UnixNano())
	data := sample.Ints(src, 10, 1, 100)
	fmt.Printf("Original Data: %v\n", data)
	fmt.Printf("Sorted Data: %v\n", mergesort.MergeSort(data))

	heading.Println("Growth Comparison Table")
	growth.Fprint(os.Stdout, growth.Table(growth.DefaultSizes))

	fmt.Println()
	fmt.Println("Observation:")
	fmt.Println("Notice how n log n stays much closer to Linear than Quadratic.")
	fmt.Println("When n=10,000:")
	fmt.Println("- n² is 100,000,000 operations.")
	fmt.Println("- n log n is only ~132,877 operations.")
	fmt.Println("This makes O(n log n) the gold standard for general-purpose sorting.")
}
