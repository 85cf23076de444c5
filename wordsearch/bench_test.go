package wordsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc24/gridgraph"
	"github.com/katalvlaran/aoc24/wordsearch"
)

// BenchmarkCountXMAS measures a 140×140 random XMAS grid, the puzzle's input size.
func BenchmarkCountXMAS(b *testing.B) {
	const n = 140
	rng := rand.New(rand.NewSource(42))
	rows := make([]string, n)
	for y := range rows {
		row := make([]byte, n)
		for x := range row {
			row[x] = "XMAS"[rng.Intn(4)]
		}
		rows[y] = string(row)
	}
	g, err := gridgraph.FromLines(rows, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup FromLines failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = wordsearch.CountXMAS(g)
		_ = wordsearch.CountCrossMAS(g)
	}
}
