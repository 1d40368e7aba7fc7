package main

import (
	"strings"

	"github.com/puzzlekit/aoc"
)

type equation struct {
	test int
	nums []int
}

func parseEquations(lines []string) []equation {
	var out []equation
	for _, line := range lines {
		test, nums, ok := strings.Cut(line, ":")
		if !ok {
			panic("bad equation: " + line)
		}
		out = append(out, equation{aoc.Int(test), aoc.Fields(nums)})
	}
	return out
}

// solvable reports whether operators evaluated left to right can combine
// nums into test. It works backwards from the last number, undoing each
// operator only when that leaves a whole result.
func solvable(test int, nums []int, concat bool) bool {
	last := nums[len(nums)-1]
	if len(nums) == 1 {
		return test == last
	}
	rest := nums[:len(nums)-1]
	if test >= last && solvable(test-last, rest, concat) {
		return true
	}
	if last != 0 && test%last == 0 && solvable(test/last, rest, concat) {
		return true
	}
	if concat {
		p := aoc.Pow10[int](aoc.CountDigits(last))
		if test > last && test%p == last && solvable(test/p, rest, concat) {
			return true
		}
	}
	return false
}

func calibration(eqs []equation, concat bool) int {
	return aoc.ParallelMapFold(eqs, func(eq equation) int {
		if solvable(eq.test, eq.nums, concat) {
			return eq.test
		}
		return 0
	}, func(sum, v int) int { return sum + v }, 0)
}

/*
want=3749

190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
*/
func (s solver) D7p1() any {
	return calibration(parseEquations(s.Lines()), false)
}

// want=11387
func (s solver) D7p2() any {
	return calibration(parseEquations(s.Lines()), true)
}
