package main

import "github.com/puzzlekit/aoc"

const (
	stepCost = 1
	turnCost = 1000
)

// reindeerMoves yields the moves of a reindeer: one step forward, or a
// turn in place.
func reindeerMoves(r aoc.Path, yield func(aoc.Path, int)) {
	yield(r.Step(), stepCost)
	yield(aoc.Path{Pt: r.Pt, Dir: r.Dir.Turn(true)}, turnCost)
	yield(aoc.Path{Pt: r.Pt, Dir: r.Dir.Reverse()}, 2*turnCost)
	yield(aoc.Path{Pt: r.Pt, Dir: r.Dir.Turn(false)}, turnCost)
}

// reindeerMaze returns the lowest score from S (facing east) to E, and
// the number of tiles on any path achieving it.
func reindeerMaze(g aoc.Grid[byte]) (score, tiles int) {
	var universe []aoc.Path
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == '#' {
			return
		}
		for _, d := range aoc.Directions {
			universe = append(universe, aoc.Path{Pt: p, Dir: d})
		}
	})
	start := aoc.Path{Pt: aoc.MustFind(g, 'S'), Dir: aoc.Right}
	end := aoc.MustFind(g, 'E')
	atEnd := func(r aoc.Path) bool { return r.Pt == end }

	sp := aoc.Dijkstra(start, reindeerMoves,
		aoc.WithUniverse(universe...),
		aoc.WithPredecessors[aoc.Path](),
		aoc.WithTarget(atEnd),
	)
	ends, score, ok := sp.Best(atEnd)
	if !ok {
		panic("E is unreachable")
	}
	seen := make(map[aoc.Pt]bool)
	for r := range sp.PathNodes(ends...) {
		seen[r.Pt] = true
	}
	return score, len(seen)
}

/*
want=7036

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
*/
func (s solver) D16p1() any {
	score, _ := reindeerMaze(s.Grid())
	return score
}

// want=45
func (s solver) D16p2() any {
	_, tiles := reindeerMaze(s.Grid())
	return tiles
}
