package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FromLines builds a rune grid from text rows. Row y of the grid is lines[y];
// column x is the x-th rune of that row.
// Returns ErrEmptyGrid or ErrNonRectangular as NewGridGraph does.
func FromLines(lines []string, conn Connectivity) (*GridGraph[rune], error) {
	rows := make([][]rune, len(lines))
	for y, line := range lines {
		rows[y] = []rune(line)
	}

	return NewGridGraph(rows, GridOptions{Conn: conn})
}

// ParseRunes reads a rune grid from r, one row per line. Blank lines and
// trailing carriage returns are ignored.
func ParseRunes(r io.Reader, conn Connectivity) (*GridGraph[rune], error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read grid: %w", err)
	}

	return FromLines(lines, conn)
}
