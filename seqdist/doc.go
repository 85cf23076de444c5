// Package seqdist compares two integer sequences as unordered lists.
//
// Distance pairs the smallest value of one list with the smallest of the
// other, the second smallest with the second smallest, and so on, then
// sums the absolute gaps. Similarity weights every value on the left by
// how many times it appears on the right.
//
// Usage:
//
//	left, right, err := seqdist.ParseColumns(r)
//	d, err := seqdist.Distance(left, right)
//	s := seqdist.Similarity(left, right)
//
// Performance:
//
//   - Distance:   O(N log N) time, O(N) memory (sorted copies)
//   - Similarity: O(N + M) time, O(M) memory (occurrence counts)
package seqdist
