package trie

import "io"

// Trie is a node of a rune prefix tree. The zero value is an empty trie
// ready for Insert.
type Trie struct {
	children map[rune]*Trie
	word     string // token ending at this node, valid when terminal
	terminal bool
}

// Build returns a trie holding every non-empty word.
func Build(words ...string) *Trie {
	root := &Trie{}
	for _, w := range words {
		root.Insert(w)
	}

	return root
}

// Insert adds word to the trie. Empty words are ignored since Find never
// matches without consuming a rune.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	node := t
	for _, ch := range word {
		if node.children == nil {
			node.children = make(map[rune]*Trie)
		}
		next, ok := node.children[ch]
		if !ok {
			next = &Trie{}
			node.children[ch] = next
		}
		node = next
	}
	node.word = word
	node.terminal = true
}

// Find reads runes from rs and returns the longest inserted word that the
// consumed runes spell from the start. It returns ("", false) when the input
// is exhausted, when the first rune starts no word, or when the runes
// followed reach no terminal node.
func (t *Trie) Find(rs io.RuneScanner) (string, bool) {
	ch, _, err := rs.ReadRune()
	if err != nil {
		return "", false
	}
	node, ok := t.children[ch]
	if !ok {
		return "", false
	}
	word, found := node.word, node.terminal
	for {
		ch, _, err = rs.ReadRune()
		if err != nil {
			return word, found
		}
		next, ok := node.children[ch]
		if !ok {
			// Leave the mismatching rune for the caller.
			_ = rs.UnreadRune()
			return word, found
		}
		node = next
		if node.terminal {
			word, found = node.word, true
		}
	}
}
