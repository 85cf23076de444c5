// Package trie implements a rune prefix tree used as a longest-match
// token scanner over a stream of runes.
//
// What:
//
//   - Build / Insert: add literal tokens such as "mul(" or "don't()".
//   - Find: read from an io.RuneScanner, following the trie as far as the
//     input allows, and return the longest token matched on the way.
//
// Consumption rules:
//
//   - Find always consumes the first rune it reads, match or not, so a
//     caller looping on Find makes progress through garbage input.
//   - After the first rune, Find consumes only runes that extend a trie
//     path; the first rune that does not is unread and left for the next
//     call.
//
// Complexity:
//
//   - Insert: O(len(word))
//   - Find:   O(depth of the trie), Memory: O(1)
package trie
