package patrol_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc24/patrol"
)

// ExampleWalk shows a guard that turns at a wall and leaves the lab.
func ExampleWalk() {
	lab, g, err := patrol.ParseLab(strings.NewReader("#...\n^...\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Dir, patrol.Walk(lab, g))
	// Output: ^ left after 4 cells
}

// ExampleLoopPlacements counts obstacle placements on a small floor plan
// using two workers.
func ExampleLoopPlacements() {
	plan := strings.Join([]string{
		".#...",
		"....#",
		".....",
		".^...",
		"...#.",
	}, "\n")
	lab, g, _ := patrol.ParseLab(strings.NewReader(plan))

	n, err := patrol.LoopPlacements(lab, g, patrol.WithWorkers(2))
	fmt.Println(n, err)
	// Output: 1 <nil>
}
