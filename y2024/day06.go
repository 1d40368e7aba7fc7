package main

import "github.com/puzzlekit/aoc"

// patrol walks the guard from start until it leaves the lab, turning
// right at every obstruction. extra is treated as one more obstruction.
// It returns the cells visited, and reports whether the guard ends up
// walking in a loop instead.
func patrol(g aoc.Grid[byte], start aoc.Path, extra aoc.Pt) (visited map[aoc.Pt]bool, loops bool) {
	seen := map[aoc.Path]bool{start: true}
	visited = map[aoc.Pt]bool{start.Pt: true}
	cur := start
	for {
		next, ok := g.Move(cur)
		if !ok {
			return visited, false
		}
		if g.At(next.Pt) == '#' || next.Pt == extra {
			cur.Dir = cur.Dir.Turn(true)
		} else {
			cur = next
			visited[cur.Pt] = true
		}
		if seen[cur] {
			return visited, true
		}
		seen[cur] = true
	}
}

func guardStart(g aoc.Grid[byte]) aoc.Path {
	return aoc.Path{Pt: aoc.MustFind(g, '^'), Dir: aoc.Up}
}

// loopingObstructions counts the cells where one new obstruction traps
// the guard in a loop. Only cells on the guard's unobstructed route matter.
func loopingObstructions(g aoc.Grid[byte]) int {
	start := guardStart(g)
	visited, _ := patrol(g, start, aoc.Pt{X: -1, Y: -1})
	var candidates []aoc.Pt
	for p := range visited {
		if p != start.Pt {
			candidates = append(candidates, p)
		}
	}
	return aoc.ParallelMapFold(candidates, func(p aoc.Pt) bool {
		_, loops := patrol(g, start, p)
		return loops
	}, func(n int, loops bool) int {
		if loops {
			n++
		}
		return n
	}, 0)
}

/*
want=41

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
*/
func (s solver) D6p1() any {
	g := s.Grid()
	visited, loops := patrol(g, guardStart(g), aoc.Pt{X: -1, Y: -1})
	if loops {
		panic("guard never leaves")
	}
	return len(visited)
}

// want=6
func (s solver) D6p2() any {
	return loopingObstructions(s.Grid())
}
