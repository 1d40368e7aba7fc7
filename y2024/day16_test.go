package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
)

const reindeerSample = `
###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

func TestReindeerMaze(t *testing.T) {
	tests := []struct {
		name         string
		maze         string
		score, tiles int
	}{
		{"sample", reindeerSample, 7036, 45},
		{"corridor", "#####\n#S.E#\n#####\n", 2, 3},
		{"turn", "####\n#.E#\n#S##\n####\n", 2002, 3},
		{"two ways", "#####\n#...#\n#S#E#\n#...#\n#####\n", 3004, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, tiles := reindeerMaze(aoc.ParseGrid([]byte(tt.maze)))
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.tiles, tiles)
		})
	}
}
