package main

import (
	"regexp"

	"github.com/puzzlekit/aoc"
)

var instrRx = regexp.MustCompile(`mul\((\d{1,3}),(\d{1,3})\)|do\(\)|don't\(\)`)

// sumMuls adds up the products of the mul instructions in memory. With
// conditionals, don't() disables the muls that follow it until the next
// do().
func sumMuls(memory string, conditionals bool) int {
	sum, enabled := 0, true
	for _, m := range instrRx.FindAllStringSubmatch(memory, -1) {
		switch m[0] {
		case "do()":
			enabled = true
		case "don't()":
			enabled = false
		default:
			if enabled || !conditionals {
				sum += aoc.Int(m[1]) * aoc.Int(m[2])
			}
		}
	}
	return sum
}

/*
want=161

xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))
*/
func (s solver) D3p1() any {
	return sumMuls(s.Text(), false)
}

/*
want=48

xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))
*/
func (s solver) D3p2() any {
	return sumMuls(s.Text(), true)
}
