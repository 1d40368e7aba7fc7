package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobots(t *testing.T) {
	size := aoc.Pt{X: 11, Y: 7}
	r := parseRobots([]string{"p=2,4 v=2,-3"})[0]
	assert.Equal(t, robot{aoc.Pt{X: 2, Y: 4}, aoc.Pt{X: 2, Y: -3}}, r)
	for i, want := range []aoc.Pt{{X: 2, Y: 4}, {X: 4, Y: 1}, {X: 6, Y: 5}, {X: 8, Y: 2}, {X: 10, Y: 6}, {X: 1, Y: 3}} {
		assert.Equal(t, want, r.at(i, size), "after %ds", i)
	}
	assert.Equal(t, r.at(3, size), r.at(3+77, size))
}

func TestSafetyFactor(t *testing.T) {
	size := aoc.Pt{X: 11, Y: 7}
	robots := parseRobots([]string{
		"p=1,1 v=0,0", "p=9,1 v=0,0", "p=9,1 v=0,0",
		"p=1,5 v=0,0", "p=9,5 v=0,0", "p=5,5 v=0,0",
	})
	assert.Equal(t, 1*2*1*1, safetyFactor(robots, 100, size))

	_, ok := firstSpread(robots, size)
	assert.False(t, ok)

	n, ok := firstSpread(parseRobots([]string{"p=0,0 v=1,0", "p=1,0 v=0,0"}), size)
	require.True(t, ok)
	assert.Equal(t, 0, n)

	n, ok = firstSpread(parseRobots([]string{"p=0,0 v=1,0", "p=0,0 v=0,1"}), size)
	require.True(t, ok)
	assert.Equal(t, 1, n)
}
