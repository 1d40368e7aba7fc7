package main

import "github.com/puzzlekit/aoc"

func antennas(g aoc.Grid[byte]) map[byte][]aoc.Pt {
	out := make(map[byte][]aoc.Pt)
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != '.' {
			out[c] = append(out[c], p)
		}
	})
	return out
}

// antinodes returns the cells in line with two antennas of the same
// frequency. Without harmonics only the two cells twice as far from one
// antenna as from the other count.
func antinodes(g aoc.Grid[byte], harmonics bool) map[aoc.Pt]bool {
	out := make(map[aoc.Pt]bool)
	for _, pts := range antennas(g) {
		for i, a := range pts {
			for _, b := range pts[i+1:] {
				d := aoc.Pt{X: b.X - a.X, Y: b.Y - a.Y}
				if !harmonics {
					for _, p := range []aoc.Pt{b.Add(d), {X: a.X - d.X, Y: a.Y - d.Y}} {
						if g.InBounds(p) {
							out[p] = true
						}
					}
					continue
				}
				k := aoc.GCD(d.X, d.Y)
				step := aoc.Pt{X: d.X / k, Y: d.Y / k}
				back := aoc.Pt{X: -step.X, Y: -step.Y}
				for _, s := range []aoc.Pt{step, back} {
					for p := a; g.InBounds(p); p = p.Add(s) {
						out[p] = true
					}
				}
			}
		}
	}
	return out
}

/*
want=14

............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............
*/
func (s solver) D8p1() any {
	return len(antinodes(s.Grid(), false))
}

// want=34
func (s solver) D8p2() any {
	return len(antinodes(s.Grid(), true))
}
