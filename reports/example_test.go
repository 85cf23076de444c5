package reports_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc24/reports"
)

// ExampleCountSafeDampened compares the strict and one-fault-tolerant counts.
func ExampleCountSafeDampened() {
	rs, _ := reports.ParseReports(strings.NewReader(`7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
`))
	fmt.Println("safe:", reports.CountSafe(rs))
	fmt.Println("dampened:", reports.CountSafeDampened(rs))

	// Output:
	// safe: 2
	// dampened: 4
}
