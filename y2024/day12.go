package main

import "github.com/puzzlekit/aoc"

// corners counts the corners of region, which equals its number of sides.
func corners(region map[aoc.Pt]bool) int {
	n := 0
	for p := range region {
		for _, dx := range []int{-1, 1} {
			for _, dy := range []int{-1, 1} {
				a := region[aoc.Pt{X: p.X + dx, Y: p.Y}]
				c := region[aoc.Pt{X: p.X, Y: p.Y + dy}]
				b := region[aoc.Pt{X: p.X + dx, Y: p.Y + dy}]
				switch {
				case !a && !c:
					n++ // outer
				case a && c && !b:
					n++ // inner
				}
			}
		}
	}
	return n
}

// fencePrice returns the price of fencing every region of g, by perimeter
// and by number of sides.
func fencePrice(g aoc.Grid[byte]) (byPerimeter, bySides int) {
	seen := make(map[aoc.Pt]bool)
	g.ForEach(func(p aoc.Pt, _ byte) {
		if seen[p] {
			return
		}
		region, perimeter := aoc.Region(g, p)
		for q := range region {
			seen[q] = true
		}
		byPerimeter += len(region) * perimeter
		bySides += len(region) * corners(region)
	})
	return byPerimeter, bySides
}

/*
want=140

AAAA
BBCD
BBCC
EEEC
*/
func (s solver) D12p1() any {
	price, _ := fencePrice(s.Grid())
	return price
}

// want=80
func (s solver) D12p2() any {
	_, price := fencePrice(s.Grid())
	return price
}
