package aoc

import "golang.org/x/exp/maps"

// JumpSavings counts the jumps that save at least minSaving over the
// costs in cost, typically the Cost map of a Dijkstra run.
//
// A jump leaves some point p and lands on any point q of cost within
// manhattan distance maxJump of p, ignoring the edges of the graph and
// costing that distance. It saves cost[q] - cost[p] - distance when that
// is positive.
func JumpSavings(cost map[Pt]int, maxJump, minSaving int) int {
	pts := maps.Keys(cost)
	return ParallelMapFold(chunks(pts, 256), func(chunk []Pt) int {
		n := 0
		for _, p := range chunk {
			from := cost[p]
			p.PointsWithin(maxJump, func(q Pt, d int) bool {
				to, ok := cost[q]
				if ok && to-from-d >= minSaving && to-from-d > 0 {
					n++
				}
				return true
			})
		}
		return n
	}, func(total, n int) int {
		return total + n
	}, 0)
}

func chunks[T any](s []T, size int) [][]T {
	var out [][]T
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	if len(s) > 0 {
		out = append(out, s)
	}
	return out
}
