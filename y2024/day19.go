package main

import (
	"strings"

	"github.com/puzzlekit/aoc"
)

func parseTowels(in string) (towels, designs []string) {
	head, rest, ok := strings.Cut(in, "\n\n")
	if !ok {
		panic("missing blank line between towels and designs")
	}
	towels = strings.Split(strings.TrimSpace(head), ", ")
	designs = strings.Fields(rest)
	return towels, designs
}

// arrangements counts the ways design can be built from towels.
func arrangements(design string, towels []string, memo *aoc.Memo[string, int]) int {
	return aoc.Recurse(memo, design, func(self func(string) int, rest string) int {
		if rest == "" {
			return 1
		}
		n := 0
		for _, t := range towels {
			if strings.HasPrefix(rest, t) {
				n += self(rest[len(t):])
			}
		}
		return n
	})
}

// possible reports whether design can be built from towels at all.
func possible(design string, towels []string, memo *aoc.Memo[string, bool]) bool {
	return aoc.Recurse(memo, design, func(self func(string) bool, rest string) bool {
		if rest == "" {
			return true
		}
		for _, t := range towels {
			if strings.HasPrefix(rest, t) && self(rest[len(t):]) {
				return true
			}
		}
		return false
	})
}

/*
want=6

r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
*/
func (s solver) D19p1() any {
	towels, designs := parseTowels(s.Text())
	memo := aoc.NewMemo[string, bool]()
	n := 0
	for _, d := range designs {
		if possible(d, towels, memo) {
			n++
		}
	}
	return n
}

// want=16
func (s solver) D19p2() any {
	towels, designs := parseTowels(s.Text())
	memo := aoc.NewMemo[string, int]()
	n := 0
	for _, d := range designs {
		n += arrangements(d, towels, memo)
	}
	return n
}
