package main

import (
	"fmt"
	"strings"

	"github.com/puzzlekit/aoc"
)

type clawMachine struct {
	a, b, prize aoc.Pt
}

func parseClawMachines(in string) []clawMachine {
	var out []clawMachine
	for _, block := range strings.Split(strings.ReplaceAll(in, "\r", ""), "\n\n") {
		var m clawMachine
		aoc.MustGet(fmt.Sscanf(strings.TrimSpace(block),
			"Button A: X+%d, Y+%d\nButton B: X+%d, Y+%d\nPrize: X=%d, Y=%d",
			&m.a.X, &m.a.Y, &m.b.X, &m.b.Y, &m.prize.X, &m.prize.Y))
		out = append(out, m)
	}
	return out
}

// tokens returns the cost of winning the prize, at three tokens per A
// press and one per B press. A positive limit caps the presses of each
// button. Machines whose buttons move the claw along the same line are
// reported as unwinnable.
func (m clawMachine) tokens(limit int) (int, bool) {
	det := m.a.X*m.b.Y - m.a.Y*m.b.X
	if det == 0 {
		return 0, false
	}
	if m.prize.X%aoc.GCD(m.a.X, m.b.X) != 0 || m.prize.Y%aoc.GCD(m.a.Y, m.b.Y) != 0 {
		return 0, false
	}
	an := m.prize.X*m.b.Y - m.prize.Y*m.b.X
	bn := m.a.X*m.prize.Y - m.a.Y*m.prize.X
	if an%det != 0 || bn%det != 0 {
		return 0, false
	}
	a, b := an/det, bn/det
	if a < 0 || b < 0 || limit > 0 && (a > limit || b > limit) {
		return 0, false
	}
	return 3*a + b, true
}

func fewestTokens(machines []clawMachine, offset, limit int) int {
	total := 0
	for _, m := range machines {
		m.prize = m.prize.Add(aoc.Pt{X: offset, Y: offset})
		if t, ok := m.tokens(limit); ok {
			total += t
		}
	}
	return total
}

/*
want=480

Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176

Button A: X+17, Y+86
Button B: X+84, Y+37
Prize: X=7870, Y=6450

Button A: X+69, Y+23
Button B: X+27, Y+71
Prize: X=18641, Y=10279
*/
func (s solver) D13p1() any {
	return fewestTokens(parseClawMachines(s.Text()), 0, 100)
}

// want=875318608908
func (s solver) D13p2() any {
	return fewestTokens(parseClawMachines(s.Text()), 10000000000000, 0)
}
