package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClawMachines(t *testing.T) {
	machines := parseClawMachines(`Button A: X+94, Y+34
Button B: X+22, Y+67
Prize: X=8400, Y=5400

Button A: X+26, Y+66
Button B: X+67, Y+21
Prize: X=12748, Y=12176
`)
	require.Len(t, machines, 2)
	assert.Equal(t, clawMachine{a: aoc.Pt{X: 94, Y: 34}, b: aoc.Pt{X: 22, Y: 67}, prize: aoc.Pt{X: 8400, Y: 5400}}, machines[0])

	cost, ok := machines[0].tokens(100)
	require.True(t, ok)
	assert.Equal(t, 280, cost)

	_, ok = machines[1].tokens(100)
	assert.False(t, ok)

	assert.Equal(t, 280, fewestTokens(machines, 0, 100))
	assert.Equal(t, 459236326669, fewestTokens(machines[1:], 10000000000000, 0))
}

func TestClawMachineEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		m     clawMachine
		limit int
		want  int
		ok    bool
	}{
		{"over limit", clawMachine{aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 0, Y: 1}, aoc.Pt{X: 101, Y: 1}}, 100, 0, false},
		{"no limit", clawMachine{aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 0, Y: 1}, aoc.Pt{X: 101, Y: 1}}, 0, 304, true},
		{"gcd", clawMachine{aoc.Pt{X: 2, Y: 1}, aoc.Pt{X: 4, Y: 3}, aoc.Pt{X: 7, Y: 5}}, 0, 0, false},
		{"collinear", clawMachine{aoc.Pt{X: 1, Y: 1}, aoc.Pt{X: 2, Y: 2}, aoc.Pt{X: 4, Y: 4}}, 0, 0, false},
		{"negative presses", clawMachine{aoc.Pt{X: 1, Y: 0}, aoc.Pt{X: 0, Y: 1}, aoc.Pt{X: -1, Y: 1}}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.m.tokens(tt.limit)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
