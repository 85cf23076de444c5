// Package wordsearch counts words hidden in a letter grid.
//
// CountWord looks for straight-line occurrences along every neighbor
// direction of the grid: all eight directions for a Conn8 grid (the usual
// word-search rules, backwards and diagonal included), only the four
// orthogonal ones for a Conn4 grid. CountCross looks for two diagonal
// copies of an odd-length word crossing at their middle letter, each
// readable in either direction.
//
// Complexity:
//
//   - CountWord:  O(W×H×d×L), d = 4 or 8, L = word length
//   - CountCross: O(W×H×L)
package wordsearch
