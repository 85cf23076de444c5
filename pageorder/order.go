package pageorder

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc24/dfs"
)

// Update is a sequence of page numbers.
type Update []int

// IsOrdered reports whether no page of u is required by rules to precede a
// page printed before it.
func IsOrdered(rules Rules, u Update) bool {
	for i := 0; i < len(u); i++ {
		for j := i + 1; j < len(u); j++ {
			if rules.Precedes(u[j], u[i]) {
				return false
			}
		}
	}

	return true
}

// Reorder returns the pages of u sorted so that every applicable rule holds.
// u itself is not modified. Pages unrelated by any rule keep a deterministic
// order derived from their positions in u.
func Reorder(rules Rules, u Update) (Update, error) {
	order, err := dfs.TopologicalSort([]int(u), rules.successors)
	if err != nil {
		return nil, fmt.Errorf("pageorder: reorder %v: %w", []int(u), err)
	}
	// TopologicalSort drops duplicates; keep every printed page.
	if len(order) != len(u) {
		order = expandDuplicates(order, u)
	}

	return Update(order), nil
}

// Middle returns the page in the middle of u.
func Middle(u Update) (int, error) {
	if len(u) == 0 {
		return 0, ErrEmptyUpdate
	}

	return u[len(u)/2], nil
}

// SumOrderedMiddles sums the middle pages of the updates already in order.
func SumOrderedMiddles(rules Rules, us []Update) (int, error) {
	sum := 0
	for _, u := range us {
		if !IsOrdered(rules, u) {
			continue
		}
		m, err := Middle(u)
		if err != nil {
			return 0, err
		}
		sum += m
	}

	return sum, nil
}

// SumReorderedMiddles reorders every update that is out of order and sums
// the middle pages of the results.
func SumReorderedMiddles(rules Rules, us []Update) (int, error) {
	sum := 0
	for _, u := range us {
		if IsOrdered(rules, u) {
			continue
		}
		fixed, err := Reorder(rules, u)
		if err != nil {
			return 0, err
		}
		m, err := Middle(fixed)
		if err != nil {
			return 0, err
		}
		sum += m
	}

	return sum, nil
}

// expandDuplicates repeats each page of order as many times as it occurs in u.
func expandDuplicates(order []int, u Update) []int {
	counts := make(map[int]int, len(order))
	for _, p := range u {
		counts[p]++
	}
	out := make([]int, 0, len(u))
	for _, p := range order {
		out = append(out, slices.Repeat([]int{p}, counts[p])...)
	}

	return out
}
