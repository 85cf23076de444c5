// Package mulscan extracts multiplication instructions from corrupted
// program memory.
//
// Only the exact form mul(<digits>,<digits>) counts; anything else around
// or inside it is noise. ConditionalMultiply additionally honors do() and
// don't() switches. Tokens are recognized with a longest-match prefix trie
// (package trie), so overlapping tokens such as do() and don't() are told
// apart without backtracking.
package mulscan
