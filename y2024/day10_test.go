package main

import (
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
)

func TestTrailScores(t *testing.T) {
	tests := []struct {
		name          string
		topo          string
		score, rating int
	}{
		{"single", "0123\n1234\n8765\n9876\n", 1, 16},
		{"fork", "...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9\n", 2, 2},
		{"no summit", "012\n...\n", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, rating := trailScores(aoc.ParseGrid([]byte(tt.topo)))
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.rating, rating)
		})
	}
}
