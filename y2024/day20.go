package main

import (
	"fmt"

	"github.com/puzzlekit/aoc"
)

// cheats counts the cheats of at most maxCheat picoseconds that save at
// least minSaving picoseconds on the race track g.
func cheats(g aoc.Grid[byte], maxCheat, minSaving int) int {
	var track []aoc.Pt
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != '#' {
			track = append(track, p)
		}
	})
	start, end := aoc.MustFind(g, 'S'), aoc.MustFind(g, 'E')
	sp := aoc.Dijkstra(start, gridMoves, aoc.WithUniverse(track...))

	// A single track means the end is the farthest point. Cheats are
	// measured against the time on that track.
	last := sp.Order[len(sp.Order)-1]
	if c, ok := sp.CostTo(end); !ok || c != sp.Cost[last] {
		panic(fmt.Sprintf("end %v is not the farthest point of the track (%v is)", end, last))
	}
	return aoc.JumpSavings(sp.Cost, maxCheat, minSaving)
}

func (s solver) minSaving(sample int) int {
	if s.SampleMode {
		return sample
	}
	return 100
}

/*
want=10

###############
#...#...#.....#
#.#.#.#.#.###.#
#S#...#.#.#...#
#######.#.#.###
#######.#.#...#
#######.#.###.#
###..E#...#...#
###.#######.###
#...###...#...#
#.#####.#.###.#
#.#...#.#.#...#
#.#.#.#.#.#.###
#...#...#...###
###############
*/
func (s solver) D20p1() any {
	return cheats(s.Grid(), 2, s.minSaving(10))
}

// want=285
func (s solver) D20p2() any {
	return cheats(s.Grid(), 20, s.minSaving(50))
}
