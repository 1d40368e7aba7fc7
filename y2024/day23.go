package main

import (
	"slices"
	"strings"

	"github.com/puzzlekit/aoc"
)

func parseLAN(lines []string) *aoc.Graph[string] {
	g := new(aoc.Graph[string])
	for _, line := range lines {
		a, b, ok := strings.Cut(line, "-")
		if !ok {
			panic("bad connection: " + line)
		}
		g.AddEdge(a, b, 1)
	}
	return g
}

// historianTriangles counts the sets of three interconnected computers
// with at least one name starting with t.
func historianTriangles(g *aoc.Graph[string]) int {
	n := 0
	for _, t := range g.Triangles() {
		if slices.ContainsFunc(t[:], func(c string) bool { return strings.HasPrefix(c, "t") }) {
			n++
		}
	}
	return n
}

// lanPassword returns the sorted, comma separated names of the largest
// set of interconnected computers.
func lanPassword(g *aoc.Graph[string]) string {
	party := slices.Clone(g.MaxClique())
	slices.Sort(party)
	return strings.Join(party, ",")
}

/*
want=7

kh-tc
qp-kh
de-cg
ka-co
yn-aq
qp-ub
cg-tb
vc-aq
tb-ka
wh-tc
yn-cg
kh-ub
ta-co
de-co
tc-td
tb-wq
wh-td
ta-ka
td-qp
aq-cg
wq-ub
ub-vc
de-ta
wq-aq
wq-vc
wh-yn
ka-de
kh-ta
co-tc
wh-qp
tb-vc
td-yn
*/
func (s solver) D23p1() any {
	return historianTriangles(parseLAN(s.Lines()))
}

// want=co,de,ka,ta
func (s solver) D23p2() any {
	return lanPassword(parseLAN(s.Lines()))
}
