package mulscan

import (
	"io"
	"strings"

	"github.com/katalvlaran/aoc24/trie"
)

// Instruction tokens.
const (
	TokenMul  = "mul("
	TokenDo   = "do()"
	TokenDont = "don't()"
)

var (
	mulOnly     = trie.Build(TokenMul)
	conditional = trie.Build(TokenMul, TokenDo, TokenDont)
)

// Multiply returns the sum of a*b over every well-formed mul(a,b) in text.
func Multiply(text string) int {
	return scan(text, mulOnly)
}

// ConditionalMultiply is Multiply where don't() disables and do() re-enables
// the mul instructions that follow. Instructions start enabled.
func ConditionalMultiply(text string) int {
	return scan(text, conditional)
}

func scan(text string, tokens *trie.Trie) int {
	rs := strings.NewReader(text)
	enabled := true
	sum := 0
	for rs.Len() > 0 {
		tok, ok := tokens.Find(rs)
		if !ok {
			continue
		}
		switch tok {
		case TokenDo:
			enabled = true
		case TokenDont:
			enabled = false
		case TokenMul:
			if !enabled {
				continue
			}
			if product, ok := operands(rs); ok {
				sum += product
			}
		}
	}

	return sum
}

// operands reads "<digits>,<digits>)" and returns the product. On the first
// deviation it stops, leaving the deviating rune unread.
func operands(rs io.RuneScanner) (int, bool) {
	a, ok := number(rs)
	if !ok || !expect(rs, ',') {
		return 0, false
	}
	b, ok := number(rs)
	if !ok || !expect(rs, ')') {
		return 0, false
	}

	return a * b, true
}

// number consumes a run of ASCII digits.
func number(rs io.RuneScanner) (int, bool) {
	n, digits := 0, 0
	for {
		ch, _, err := rs.ReadRune()
		if err != nil {
			break
		}
		if ch < '0' || ch > '9' {
			_ = rs.UnreadRune()
			break
		}
		n = n*10 + int(ch-'0')
		digits++
	}

	return n, digits > 0
}

// expect consumes want if it is the next rune.
func expect(rs io.RuneScanner, want rune) bool {
	ch, _, err := rs.ReadRune()
	if err != nil {
		return false
	}
	if ch != want {
		_ = rs.UnreadRune()
		return false
	}

	return true
}
