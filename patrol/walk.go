package patrol

import (
	"fmt"
)

// noBlock disables the extra obstacle in walk.
const noBlock = -1

// Walk moves g through lab until it steps off the map or starts repeating.
// A guard outside the lab yields the zero Route.
//
// A guard boxed in on all four sides turns in place forever; that is
// reported as a loop.
func Walk(lab *Lab, g Guard) Route {
	r, _ := walk(lab, g, noBlock)
	return r
}

// walk runs the simulation with the cell at index blocked treated as an
// obstacle, and returns the per-cell bitmask of directions the guard
// entered each cell with.
func walk(lab *Lab, g Guard, blocked int) (Route, []uint8) {
	grid := lab.grid
	if !grid.InBounds(g.X, g.Y) {
		return Route{}, nil
	}

	seen := make([]uint8, grid.Len())
	seen[grid.Index(g.X, g.Y)] = 1 << g.Dir
	route := Route{Visited: 1}
	turns := 0
	for {
		nx, ny := g.Ahead()
		open, ok := grid.AtOK(nx, ny)
		if !ok {
			return route, seen
		}
		i := grid.Index(nx, ny)
		if !open || i == blocked {
			if turns++; turns == 4 {
				route.Loop = true
				return route, seen
			}
			g.Dir = g.Dir.TurnRight()
			continue
		}
		turns = 0

		bit := uint8(1) << g.Dir
		if seen[i]&bit != 0 {
			route.Loop = true
			return route, seen
		}
		if seen[i] == 0 {
			route.Visited++
		}
		seen[i] |= bit
		g.X, g.Y = nx, ny
	}
}

// candidates lists the cell indices worth blocking: the cells on the
// unobstructed route, or every open cell when that route already loops.
// The start cell is never a candidate.
func candidates(lab *Lab, g Guard) []int {
	route, seen := walk(lab, g, noBlock)
	start := lab.grid.Index(g.X, g.Y)

	var out []int
	for i := range seen {
		if i == start {
			continue
		}
		x, y := lab.grid.Coordinate(i)
		if !lab.grid.At(x, y) {
			continue
		}
		if route.Loop || seen[i] != 0 {
			out = append(out, i)
		}
	}

	return out
}

func (r Route) String() string {
	if r.Loop {
		return fmt.Sprintf("loop after %d cells", r.Visited)
	}
	return fmt.Sprintf("left after %d cells", r.Visited)
}
