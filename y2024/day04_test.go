package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
)

func TestWordSearch(t *testing.T) {
	tests := []struct {
		name        string
		grid        string
		xmas, cross int
	}{
		{"row", "XMAS", 1, 0},
		{"backwards", "SAMX", 1, 0},
		{"column", "S\nA\nM\nX", 1, 0},
		{"diagonal", "X...\n.M..\n..A.\n...S", 1, 0},
		{"anti-diagonal", "...S\n..A.\n.M..\nX...", 1, 0},
		{"cross", "M.S\n.A.\nM.S", 0, 1},
		{"same letters", "M.M\n.A.\nM.M", 0, 0},
		{"star", "S..S..S\n.A.A.A.\n..MMM..\nSAMXMAS\n..MMM..\n.A.A.A.\nS..S..S", 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := aoc.ParseGrid([]byte(tt.grid))
			assert.Equal(t, tt.xmas, countXMAS(g))
			assert.Equal(t, tt.cross, countCrossMAS(g))
		})
	}
}
