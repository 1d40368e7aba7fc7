package main

import (
	"bytes"
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(g aoc.Grid[byte]) string {
	return string(bytes.Join(g, []byte("\n")))
}

func TestPush(t *testing.T) {
	g, moves := parseWarehouse("#######\n#.@OO.#\n#######\n\n>>\n<")
	require.Equal(t, []aoc.Direction{aoc.Right, aoc.Right, aoc.Left}, moves)

	bot := push(g, aoc.Pt{X: 2, Y: 1}, aoc.Right)
	assert.Equal(t, aoc.Pt{X: 3, Y: 1}, bot)
	assert.Equal(t, "#######\n#..@OO#\n#######", render(g))

	bot = push(g, bot, aoc.Right)
	assert.Equal(t, aoc.Pt{X: 3, Y: 1}, bot, "boxes against the wall stay put")
	assert.Equal(t, "#######\n#..@OO#\n#######", render(g))
}

func TestPushWideBoxes(t *testing.T) {
	g, _ := parseWarehouse("#####\n#...#\n#.O.#\n#OO.#\n#.@.#\n#####\n\n^")
	g = widen(g)
	bot := aoc.MustFind(g, '@')
	require.Equal(t, aoc.Pt{X: 4, Y: 4}, bot)

	bot = push(g, bot, aoc.Up)
	assert.Equal(t, aoc.Pt{X: 4, Y: 3}, bot)
	assert.Equal(t, ""+
		"##########\n"+
		"##..[]..##\n"+
		"##..[]..##\n"+
		"##[]@...##\n"+
		"##......##\n"+
		"##########", render(g))

	bot = push(g, bot, aoc.Up)
	assert.Equal(t, aoc.Pt{X: 4, Y: 3}, bot, "a box against the wall blocks the whole stack")
}

func TestGPSSum(t *testing.T) {
	g, moves := parseWarehouse("#######\n#...#.#\n#.....#\n#..OO@#\n#..O..#\n#.....#\n#######\n\n<vv<<^^<<^^")
	assert.Equal(t, 618, gpsSum(widen(g), moves))

	g, moves = parseWarehouse("########\n#..O.O.#\n##@.O..#\n#...O..#\n#.#.O..#\n#...O..#\n#......#\n########\n\n<^^>>>vv<v>>v<<")
	assert.Equal(t, 2028, gpsSum(g, moves))
}
