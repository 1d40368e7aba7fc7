package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labSample = `
....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func TestPatrol(t *testing.T) {
	g := aoc.ParseGrid([]byte(labSample))
	start := guardStart(g)
	require.Equal(t, aoc.Pt{X: 4, Y: 6}, start.Pt)

	visited, loops := patrol(g, start, aoc.Pt{X: -1, Y: -1})
	assert.False(t, loops)
	assert.Len(t, visited, 41)

	_, loops = patrol(g, start, aoc.Pt{X: 3, Y: 6})
	assert.True(t, loops)

	assert.Equal(t, 6, loopingObstructions(g))
}

func TestPatrolBoxedIn(t *testing.T) {
	g := aoc.ParseGrid([]byte(".#.\n#^#\n.#."))
	visited, loops := patrol(g, guardStart(g), aoc.Pt{X: -1, Y: -1})
	assert.True(t, loops)
	assert.Len(t, visited, 1)
}
