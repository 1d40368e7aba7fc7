package main

import "github.com/puzzlekit/aoc"

// uphill yields the neighbours of p exactly one higher.
func uphill(g aoc.Grid[byte]) aoc.NeighborFunc[aoc.Pt] {
	return func(p aoc.Pt, yield func(aoc.Pt, int)) {
		h := g.At(p)
		p.ForImmediateNeighbors(func(n aoc.Pt) bool {
			if c, ok := g.AtOk(n); ok && c == h+1 {
				yield(n, 1)
			}
			return true
		})
	}
}

// trailScores returns the sum over trailheads of the number of summits
// each reaches, and of the number of distinct trails each starts.
func trailScores(g aoc.Grid[byte]) (score, rating int) {
	next := uphill(g)
	trails := aoc.NewMemo[aoc.Pt, int]()
	countTrails := func(self func(aoc.Pt) int, p aoc.Pt) int {
		if g.At(p) == '9' {
			return 1
		}
		n := 0
		next(p, func(q aoc.Pt, _ int) {
			n += self(q)
		})
		return n
	}
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != '0' {
			return
		}
		for q := range aoc.Dijkstra(p, next).Cost {
			if g.At(q) == '9' {
				score++
			}
		}
		rating += aoc.Recurse(trails, p, countTrails)
	})
	return score, rating
}

/*
want=36

89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732
*/
func (s solver) D10p1() any {
	score, _ := trailScores(s.Grid())
	return score
}

// want=81
func (s solver) D10p2() any {
	_, rating := trailScores(s.Grid())
	return rating
}
