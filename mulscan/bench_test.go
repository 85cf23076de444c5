package mulscan_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc24/mulscan"
)

// BenchmarkConditionalMultiply scans ~70 KiB of repeated sample memory.
func BenchmarkConditionalMultiply(b *testing.B) {
	text := strings.Repeat("xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))", 1000)
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mulscan.ConditionalMultiply(text)
	}
}
