package main

import (
	"slices"
	"strings"

	"github.com/puzzlekit/aoc"
)

type pageRule struct{ before, after int }

type printQueue struct {
	rules   map[pageRule]bool
	updates [][]int
}

func parsePrintQueue(in string) printQueue {
	rules, updates, ok := strings.Cut(strings.ReplaceAll(in, "\r", ""), "\n\n")
	if !ok {
		panic("missing page updates")
	}
	pq := printQueue{rules: make(map[pageRule]bool)}
	for _, line := range strings.Fields(rules) {
		a, b, ok := strings.Cut(line, "|")
		if !ok {
			panic("bad rule: " + line)
		}
		pq.rules[pageRule{aoc.Int(a), aoc.Int(b)}] = true
	}
	for _, line := range strings.Fields(updates) {
		pq.updates = append(pq.updates, aoc.Ints(strings.Split(line, ",")...))
	}
	return pq
}

func (pq printQueue) compare(a, b int) int {
	switch {
	case pq.rules[pageRule{a, b}]:
		return -1
	case pq.rules[pageRule{b, a}]:
		return 1
	}
	return 0
}

// middleSums returns the sum of the middle pages of the updates already
// in order, and of the others once ordered.
func (pq printQueue) middleSums() (ordered, reordered int) {
	for _, u := range pq.updates {
		if slices.IsSortedFunc(u, pq.compare) {
			ordered += u[len(u)/2]
			continue
		}
		u = slices.Clone(u)
		slices.SortFunc(u, pq.compare)
		reordered += u[len(u)/2]
	}
	return ordered, reordered
}

/*
want=143

47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
*/
func (s solver) D5p1() any {
	ordered, _ := parsePrintQueue(s.Text()).middleSums()
	return ordered
}

// want=123
func (s solver) D5p2() any {
	_, reordered := parsePrintQueue(s.Text()).middleSums()
	return reordered
}
