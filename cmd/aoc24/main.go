// Command aoc24 solves Advent of Code 2024 puzzles from input files.
//
//	aoc24 run 1 3      # days 1 and 3 from inputs/day1.txt, inputs/day3.txt
//	aoc24 all          # every inputs/day<N>.txt with a solver
//	aoc24 list         # registered days and input status
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/aoc24/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
