package main

import (
	"slices"

	"github.com/puzzlekit/aoc"
)

// safe reports whether the levels all increase or all decrease, by at
// least one and at most three at each step.
func safe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	up := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !up {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

// safeDampened reports whether the report is safe once at most one level
// is removed.
func safeDampened(levels []int) bool {
	if safe(levels) {
		return true
	}
	for i := range levels {
		if safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}

func countSafe(lines []string, isSafe func([]int) bool) int {
	n := 0
	for _, line := range lines {
		if isSafe(aoc.Fields(line)) {
			n++
		}
	}
	return n
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	return countSafe(s.Lines(), safe)
}

// want=4
func (s solver) D2p2() any {
	return countSafe(s.Lines(), safeDampened)
}
