package patrol

import (
	"fmt"
	"io"

	"github.com/katalvlaran/aoc24/gridgraph"
)

// Lab is the floor plan: true cells are open floor, false cells obstacles.
type Lab struct {
	grid *gridgraph.GridGraph[bool]
}

// NewLab builds a Lab from rows of open flags, indexed [y][x].
func NewLab(open [][]bool) (*Lab, error) {
	g, err := gridgraph.NewGridGraph(open, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("patrol: %w", err)
	}

	return &Lab{grid: g}, nil
}

// ParseLab reads a floor plan: '.' open, '#' obstacle, and exactly one of
// '^' '>' 'v' '<' marking the guard on open floor.
func ParseLab(r io.Reader) (*Lab, Guard, error) {
	runes, err := gridgraph.ParseRunes(r, gridgraph.Conn4)
	if err != nil {
		return nil, Guard{}, fmt.Errorf("patrol: %w", err)
	}

	var (
		guard  Guard
		guards int
		bad    error
	)
	open := gridgraph.Map(runes, func(c gridgraph.Cell[rune]) bool {
		switch c.Value {
		case '.':
			return true
		case '#':
			return false
		}
		if d, ok := ParseDirection(c.Value); ok {
			guards++
			guard = Guard{X: c.X, Y: c.Y, Dir: d}
			return true
		}
		if bad == nil {
			bad = fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c.Value, c.X, c.Y)
		}
		return false
	})

	switch {
	case bad != nil:
		return nil, Guard{}, bad
	case guards == 0:
		return nil, Guard{}, ErrNoGuard
	case guards > 1:
		return nil, Guard{}, fmt.Errorf("%w: found %d", ErrManyGuards, guards)
	}

	return &Lab{grid: open}, guard, nil
}

// Width returns the number of columns.
func (l *Lab) Width() int { return l.grid.Width }

// Height returns the number of rows.
func (l *Lab) Height() int { return l.grid.Height }

// Open reports whether (x,y) is inside the lab and not an obstacle.
func (l *Lab) Open(x, y int) bool {
	v, ok := l.grid.AtOK(x, y)
	return ok && v
}

// Check returns ErrGuardOutside or ErrGuardBlocked when g cannot start a walk.
func (l *Lab) Check(g Guard) error {
	if !l.grid.InBounds(g.X, g.Y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrGuardOutside, g.X, g.Y, l.grid.Width, l.grid.Height)
	}
	if !l.grid.At(g.X, g.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrGuardBlocked, g.X, g.Y)
	}

	return nil
}
