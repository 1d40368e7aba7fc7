package main

import (
	"slices"
	"strings"

	"github.com/puzzlekit/aoc"
)

func parseLists(lines []string) (left, right []int) {
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) != 2 {
			panic("bad location pair: " + line)
		}
		left = append(left, aoc.Int(f[0]))
		right = append(right, aoc.Int(f[1]))
	}
	return left, right
}

// listDistance pairs up the lists smallest first and sums the distances
// between the pairs.
func listDistance(left, right []int) int {
	left, right = slices.Clone(left), slices.Clone(right)
	slices.Sort(left)
	slices.Sort(right)
	d := 0
	for i := range left {
		d += aoc.AbsDiff(left[i], right[i])
	}
	return d
}

func similarity(left, right []int) int {
	counts := make(map[int]int)
	for _, n := range right {
		counts[n]++
	}
	score := 0
	for _, n := range left {
		score += n * counts[n]
	}
	return score
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	return listDistance(parseLists(s.Lines()))
}

// want=31
func (s solver) D1p2() any {
	return similarity(parseLists(s.Lines()))
}
