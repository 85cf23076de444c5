// Package aoc24 solves the first six Advent of Code 2024 puzzles.
//
// Each day's algorithm lives in its own package at the repository root;
// the command under cmd/aoc24 reads inputs/day<N>.txt and prints both parts.
//
//	seqdist     day 1  distance and similarity of two location lists
//	reports     day 2  safe reactor reports, with a one-level dampener
//	mulscan     day 3  mul(X,Y) scanning with do()/don't() switches (uses trie)
//	wordsearch  day 4  XMAS and X-MAS counting on a letter grid
//	pageorder   day 5  page ordering rules and update repair (uses dfs)
//	patrol      day 6  guard walk and loop-inducing obstacles
//
// Shared building blocks:
//
//	gridgraph   rectangular grids with 4/8-neighbour offsets
//	dfs         topological sort with cycle detection
//	trie        longest-token matching over an io.RuneScanner
//
// Quick start:
//
//	go run ./cmd/aoc24 run 1 2 3
//	go run ./cmd/aoc24 all --inputs ./inputs -v
package aoc24
