package reports_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aoc24/reports"
)

// BenchmarkCountSafeDampened measures 1000 random 8-level reports.
func BenchmarkCountSafeDampened(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	rs := make([]reports.Report, 1000)
	for i := range rs {
		r := make(reports.Report, 8)
		v := rng.Intn(50)
		for j := range r {
			v += rng.Intn(5) - 1
			r[j] = v
		}
		rs[i] = r
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = reports.CountSafeDampened(rs)
	}
}
