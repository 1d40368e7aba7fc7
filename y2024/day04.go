package main

import (
	"bytes"

	"github.com/puzzlekit/aoc"
)

const xmas = "XMAS"

// countXMAS counts XMAS in every direction. Each quarter turn of the grid
// brings two new directions, a row and a diagonal, left to right.
func countXMAS(g aoc.Grid[byte]) int {
	n := 0
	for i := 0; i < 4; i++ {
		g.ForEach(func(p aoc.Pt, _ byte) {
			for k := 0; k < len(xmas); k++ {
				c, ok := g.AtOk(aoc.Pt{X: p.X + k, Y: p.Y + k})
				if !ok || c != xmas[k] {
					return
				}
			}
			n++
		})
		for _, row := range g {
			n += bytes.Count(row, []byte(xmas))
		}
		g = g.RotateCounterClockwise()
	}
	return n
}

// countCrossMAS counts the MAS pairs crossing in an X over an A.
func countCrossMAS(g aoc.Grid[byte]) int {
	n := 0
	isMS := func(a, b byte) bool {
		return a == 'M' && b == 'S' || a == 'S' && b == 'M'
	}
	g.ForEach(func(p aoc.Pt, c byte) {
		if c != 'A' || p.Y == 0 || p.Y == len(g)-1 || p.X == 0 || p.X >= len(g[p.Y])-1 {
			return
		}
		if isMS(g[p.Y-1][p.X-1], g[p.Y+1][p.X+1]) && isMS(g[p.Y-1][p.X+1], g[p.Y+1][p.X-1]) {
			n++
		}
	})
	return n
}

/*
want=18

MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX
*/
func (s solver) D4p1() any {
	return countXMAS(s.Grid())
}

// want=9
func (s solver) D4p2() any {
	return countCrossMAS(s.Grid())
}
