package main

import (
	"strings"

	"github.com/puzzlekit/aoc"
)

const pinSpace = 5

// parseSchematics returns the pin heights of every lock (top row filled)
// and every key (bottom row filled).
func parseSchematics(in string) (locks, keys [][]int) {
	for _, block := range strings.Split(in, "\n\n") {
		g := aoc.ParseGrid([]byte(block))
		heights := make([]int, len(g[0]))
		for _, row := range g[1 : len(g)-1] {
			for x, c := range row {
				if c == '#' {
					heights[x]++
				}
			}
		}
		if g[0][0] == '#' {
			locks = append(locks, heights)
		} else {
			keys = append(keys, heights)
		}
	}
	return locks, keys
}

func fits(lock, key []int) bool {
	for i := range lock {
		if lock[i]+key[i] > pinSpace {
			return false
		}
	}
	return true
}

/*
want=3

#####
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
#####
*/
func (s solver) D25p1() any {
	locks, keys := parseSchematics(s.Text())
	n := 0
	for _, l := range locks {
		for _, k := range keys {
			if fits(l, k) {
				n++
			}
		}
	}
	return n
}
