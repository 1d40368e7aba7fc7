package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
)

const towelSample = `r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb`

func TestTowels(t *testing.T) {
	towels, designs := parseTowels(towelSample)
	assert.Len(t, towels, 8)
	assert.Len(t, designs, 8)

	want := map[string]int{
		"brwrr":  2,
		"bggr":   1,
		"gbbr":   4,
		"rrbgbr": 6,
		"ubwu":   0,
		"bwurrg": 1,
		"brgr":   2,
		"bbrgwb": 0,
	}
	ways := aoc.NewMemo[string, int]()
	can := aoc.NewMemo[string, bool]()
	total := 0
	for _, d := range designs {
		n := arrangements(d, towels, ways)
		assert.Equal(t, want[d], n, d)
		assert.Equal(t, n > 0, possible(d, towels, can), d)
		total += n
	}
	assert.Equal(t, 16, total)
}
