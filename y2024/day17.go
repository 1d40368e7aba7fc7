package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/puzzlekit/aoc"
)

type computer struct {
	a, b, c int
	program []int
}

func parseComputer(lines []string) computer {
	if len(lines) != 4 {
		panic(fmt.Sprintf("want 4 lines, got %d", len(lines)))
	}
	return computer{
		a:       aoc.Int(aoc.TrimPrefix(lines[0], "Register A: ")),
		b:       aoc.Int(aoc.TrimPrefix(lines[1], "Register B: ")),
		c:       aoc.Int(aoc.TrimPrefix(lines[2], "Register C: ")),
		program: aoc.Ints(strings.Split(aoc.TrimPrefix(lines[3], "Program: "), ",")...),
	}
}

func (m *computer) combo(op int) int {
	switch op {
	case 0, 1, 2, 3:
		return op
	case 4:
		return m.a
	case 5:
		return m.b
	case 6:
		return m.c
	}
	panic(fmt.Sprintf("invalid combo operand %d", op))
}

// run executes the program until the instruction pointer leaves it and
// returns everything it output.
func (m *computer) run() []int {
	var out []int
	for ip := 0; ip+1 < len(m.program); ip += 2 {
		op := m.program[ip+1]
		switch m.program[ip] {
		case 0: // adv
			m.a >>= m.combo(op)
		case 1: // bxl
			m.b ^= op
		case 2: // bst
			m.b = m.combo(op) % 8
		case 3: // jnz
			if m.a != 0 {
				ip = op - 2
			}
		case 4: // bxc
			m.b ^= m.c
		case 5: // out
			out = append(out, m.combo(op)%8)
		case 6: // bdv
			m.b = m.a >> m.combo(op)
		case 7: // cdv
			m.c = m.a >> m.combo(op)
		}
	}
	return out
}

// selfReplicating returns the lowest value of register A for which the
// program outputs itself. It expects a program that shifts A right by
// three bits per loop and outputs once per loop, so the output is built
// from its last value backwards, three bits of A at a time.
func (m computer) selfReplicating() (int, bool) {
	var find func(a, i int) (int, bool)
	find = func(a, i int) (int, bool) {
		for d := 0; d < 8; d++ {
			next := a<<3 | d
			try := m
			try.a = next
			if !slices.Equal(try.run(), m.program[i:]) {
				continue
			}
			if i == 0 {
				return next, true
			}
			if v, ok := find(next, i-1); ok {
				return v, true
			}
		}
		return 0, false
	}
	return find(0, len(m.program)-1)
}

func joinInts(ns []int) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ",")
}

/*
want=4,6,3,5,6,3,5,2,1,0

Register A: 729
Register B: 0
Register C: 0

Program: 0,1,5,4,3,0
*/
func (s solver) D17p1() any {
	m := parseComputer(s.Lines())
	return joinInts(m.run())
}

/*
want=117440

Register A: 2024
Register B: 0
Register C: 0

Program: 0,3,5,4,3,0
*/
func (s solver) D17p2() any {
	a, ok := parseComputer(s.Lines()).selfReplicating()
	if !ok {
		panic("program never outputs itself")
	}
	return a
}
