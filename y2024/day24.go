package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/puzzlekit/aoc"
)

type gate struct {
	a, b string
	op   string // AND, OR or XOR
	out  string
}

func (g gate) eval(a, b bool) bool {
	switch g.op {
	case "AND":
		return a && b
	case "OR":
		return a || b
	case "XOR":
		return a != b
	}
	panic(fmt.Sprintf("unknown gate %q", g.op))
}

func (g gate) feeds(wire string) bool {
	return g.a == wire || g.b == wire
}

type circuit struct {
	inputs map[string]bool
	gates  []gate
	byOut  map[string]gate
}

func parseCircuit(in string) *circuit {
	head, rest, ok := strings.Cut(in, "\n\n")
	if !ok {
		panic("missing blank line between wires and gates")
	}
	c := &circuit{
		inputs: make(map[string]bool),
		byOut:  make(map[string]gate),
	}
	for _, line := range strings.Split(strings.TrimSpace(head), "\n") {
		name, v, ok := strings.Cut(line, ": ")
		if !ok {
			panic("bad wire: " + line)
		}
		c.inputs[name] = aoc.Int(v) > 0
	}
	for _, line := range strings.Split(strings.TrimSpace(rest), "\n") {
		f := strings.Fields(line)
		if len(f) != 5 || f[3] != "->" {
			panic("bad gate: " + line)
		}
		g := gate{a: f[0], op: f[1], b: f[2], out: f[4]}
		c.gates = append(c.gates, g)
		c.byOut[g.out] = g
	}
	return c
}

// output returns the number formed by the z wires, z00 being the least
// significant bit.
func (c *circuit) output() int {
	memo := aoc.NewMemo[string, bool]()
	value := func(self func(string) bool, wire string) bool {
		if v, ok := c.inputs[wire]; ok {
			return v
		}
		g, ok := c.byOut[wire]
		if !ok {
			panic("wire without a driver: " + wire)
		}
		return g.eval(self(g.a), self(g.b))
	}
	n := 0
	for _, z := range c.zWires() {
		if aoc.Recurse(memo, z, value) {
			n |= 1 << bit(z)
		}
	}
	return n
}

func (c *circuit) zWires() []string {
	var zs []string
	for _, g := range c.gates {
		if strings.HasPrefix(g.out, "z") {
			zs = append(zs, g.out)
		}
	}
	slices.Sort(zs)
	return zs
}

func bit(wire string) int {
	return aoc.Int(wire[1:])
}

func isInputOrOutput(wire string) bool {
	return strings.HasPrefix(wire, "x") || strings.HasPrefix(wire, "y") || strings.HasPrefix(wire, "z")
}

// miswired returns the outputs of the gates breaking the structure of a
// ripple carry adder:
//
//  1. every z output but the most significant comes from an XOR gate;
//  2. the most significant z output comes from an OR gate;
//  3. every XOR gate reads an input bit or drives an output bit;
//  4. every AND gate, but the one adding x00 and y00, only feeds OR gates;
//  5. no XOR gate feeds an OR gate.
func (c *circuit) miswired() []string {
	zs := c.zWires()
	msb := zs[len(zs)-1]
	var wrong []string
	for _, g := range c.gates {
		if strings.HasPrefix(g.out, "z") {
			if g.out != msb && g.op != "XOR" {
				wrong = append(wrong, g.out)
				continue
			}
			if g.out == msb && g.op != "OR" {
				wrong = append(wrong, g.out)
				continue
			}
		}
		if g.op == "XOR" && !isInputOrOutput(g.out) && !isInputOrOutput(g.a) && !isInputOrOutput(g.b) {
			wrong = append(wrong, g.out)
			continue
		}
		if g.op == "AND" {
			if g.a == "x00" || g.b == "x00" || g.a == "y00" || g.b == "y00" {
				continue
			}
			for _, next := range c.gates {
				if next.feeds(g.out) && next.op != "OR" {
					wrong = append(wrong, g.out)
				}
			}
		}
		if g.op == "XOR" {
			for _, next := range c.gates {
				if next.feeds(g.out) && next.op == "OR" {
					wrong = append(wrong, g.out)
				}
			}
		}
	}
	slices.Sort(wrong)
	return slices.Compact(wrong)
}

/*
want=4

x00: 1
x01: 1
x02: 1
y00: 0
y01: 1
y02: 0

x00 AND y00 -> z00
x01 XOR y01 -> z01
x02 OR y02 -> z02
*/
func (s solver) D24p1() any {
	return parseCircuit(s.Text()).output()
}

/*
want=a01,z01

x00: 1
x01: 0
y00: 1
y01: 1

x00 XOR y00 -> z00
x00 AND y00 -> c00
x01 XOR y01 -> s01
s01 XOR c00 -> a01
x01 AND y01 -> z01
s01 AND c00 -> b01
a01 OR b01 -> z02
*/
func (s solver) D24p2() any {
	return strings.Join(parseCircuit(s.Text()).miswired(), ",")
}
