package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/aoc24/dfs"
)

// ExampleTopologicalSort orders a small build pipeline. Edges:
//
//	fetch → compile → test
//	fetch → lint
//
// Roots are tried in the given order, so the result is deterministic.
func ExampleTopologicalSort() {
	deps := map[string][]string{
		"fetch":   {"compile", "lint"},
		"compile": {"test"},
	}
	order, err := dfs.TopologicalSort(
		[]string{"test", "lint", "compile", "fetch"},
		func(step string) []string { return deps[step] },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)

	// Output:
	// [fetch compile lint test]
}
