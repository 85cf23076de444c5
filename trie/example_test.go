package trie_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc24/trie"
)

// ExampleTrie_Find tokenizes a noisy stream by calling Find until the
// reader is drained.
func ExampleTrie_Find() {
	tr := trie.Build("do()", "don't()")
	rs := strings.NewReader("xdo()?don't()!do(")

	for rs.Len() > 0 {
		if tok, ok := tr.Find(rs); ok {
			fmt.Println(tok)
		}
	}

	// Output:
	// do()
	// don't()
}
