package wordsearch

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// Words searched by the puzzle.
const (
	XMAS = "XMAS"
	MAS  = "MAS"
)

// ErrCrossWord indicates a word that cannot form an X: it needs a middle
// letter, so an odd length of at least three.
var ErrCrossWord = errors.New("wordsearch: cross word must have odd length >= 3")

// ParseGrid reads a letter grid with 8-directional connectivity.
func ParseGrid(r io.Reader) (*gridgraph.GridGraph[rune], error) {
	g, err := gridgraph.ParseRunes(r, gridgraph.Conn8)
	if err != nil {
		return nil, fmt.Errorf("wordsearch: %w", err)
	}

	return g, nil
}

// CountWord returns the number of straight-line occurrences of word along
// the grid's neighbor directions. A single-letter word counts once per
// matching cell; an empty word never matches.
func CountWord(g *gridgraph.GridGraph[rune], word string) int {
	w := []rune(word)
	if len(w) == 0 {
		return 0
	}
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.CellValues[y][x] != w[0] {
				continue
			}
			if len(w) == 1 {
				count++
				continue
			}
			for _, d := range g.NeighborOffsets() {
				if matchAt(g, w, x, y, d[0], d[1]) {
					count++
				}
			}
		}
	}

	return count
}

// CountCross returns the number of cells that are the middle of two
// diagonal occurrences of word, one on each diagonal, each read forwards
// or backwards.
func CountCross(g *gridgraph.GridGraph[rune], word string) (int, error) {
	w := []rune(word)
	if len(w) < 3 || len(w)%2 == 0 {
		return 0, fmt.Errorf("%w: %q", ErrCrossWord, word)
	}
	half := len(w) / 2
	count := 0
	for y := half; y < g.Height-half; y++ {
		for x := half; x < g.Width-half; x++ {
			if g.CellValues[y][x] != w[half] {
				continue
			}
			// "\" diagonal, top-left to bottom-right or back.
			down := matchAt(g, w, x-half, y-half, 1, 1) || matchAt(g, w, x+half, y+half, -1, -1)
			// "/" diagonal, bottom-left to top-right or back.
			up := matchAt(g, w, x-half, y+half, 1, -1) || matchAt(g, w, x+half, y-half, -1, 1)
			if down && up {
				count++
			}
		}
	}

	return count, nil
}

// CountXMAS counts XMAS in all eight directions.
func CountXMAS(g *gridgraph.GridGraph[rune]) int {
	return CountWord(g, XMAS)
}

// CountCrossMAS counts MAS crosses.
func CountCrossMAS(g *gridgraph.GridGraph[rune]) int {
	n, _ := CountCross(g, MAS) // MAS always satisfies the length rule
	return n
}

// matchAt reports whether w is spelled starting at (x,y) stepping (dx,dy).
func matchAt(g *gridgraph.GridGraph[rune], w []rune, x, y, dx, dy int) bool {
	for _, ch := range w {
		v, ok := g.AtOK(x, y)
		if !ok || v != ch {
			return false
		}
		x += dx
		y += dy
	}

	return true
}
