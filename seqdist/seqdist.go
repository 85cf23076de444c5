package seqdist

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Distance sorts copies of left and right and returns the sum of |l-r|
// over rank-aligned pairs. The inputs are not modified.
// Returns ErrLengthMismatch if the lists differ in length.
func Distance[T constraints.Signed](left, right []T) (T, error) {
	if len(left) != len(right) {
		return 0, ErrLengthMismatch
	}
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	var sum T
	for i := range l {
		sum += AbsDiff(l[i], r[i])
	}

	return sum, nil
}

// Similarity returns Σ v·count(v in right) over every v in left.
func Similarity[T constraints.Signed](left, right []T) T {
	counts := make(map[T]T, len(right))
	for _, v := range right {
		counts[v]++
	}

	var sum T
	for _, v := range left {
		sum += v * counts[v]
	}

	return sum
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}

	return v
}
