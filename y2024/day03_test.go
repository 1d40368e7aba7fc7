package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumMuls(t *testing.T) {
	tests := []struct {
		memory      string
		plain, cond int
	}{
		{"xmul(2,4)%&mul[3,7]!@^do_not_mul(5,5)+mul(32,64]then(mul(11,8)mul(8,5))", 161, 161},
		{"xmul(2,4)&mul[3,7]!^don't()_mul(5,5)+mul(32,64](mul(11,8)undo()?mul(8,5))", 161, 48},
		{"mul(1234,2)mul(2,3)", 6, 6},
		{"don't()mul(2,3)", 6, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.plain, sumMuls(tt.memory, false), tt.memory)
		assert.Equal(t, tt.cond, sumMuls(tt.memory, true), tt.memory)
	}
}
