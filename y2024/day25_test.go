package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const schematics = `#####
.####
.####
.####
.#.#.
.#...
.....

#####
##.##
.#.##
...##
...#.
...#.
.....

.....
#....
#....
#...#
#.#.#
#.###
#####

.....
.....
#.#..
###..
###.#
###.#
#####

.....
.....
.....
#....
#.#..
#.#.#
#####`

func TestSchematics(t *testing.T) {
	locks, keys := parseSchematics(schematics)
	assert.Equal(t, [][]int{{0, 5, 3, 4, 3}, {1, 2, 0, 5, 3}}, locks)
	assert.Equal(t, [][]int{{5, 0, 2, 1, 3}, {4, 3, 4, 0, 2}, {3, 0, 2, 0, 1}}, keys)

	assert.False(t, fits(locks[0], keys[0]))
	assert.True(t, fits(locks[0], keys[2]))
	assert.True(t, fits(locks[1], keys[2]))
}
