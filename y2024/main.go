// Command y2024 solves the Advent of Code 2024 puzzles.
//
// Inputs are cached under -inputs (default the working directory) as
// 2024/<day>.input, and fetched with the session cookie stored in
// $HOME/keys/aoc.session when missing.
package main

import (
	"embed"

	"github.com/puzzlekit/aoc"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed day*.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
