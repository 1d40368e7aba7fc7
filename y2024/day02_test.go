package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeReports(t *testing.T) {
	tests := []struct {
		levels         []int
		safe, dampened bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{9, 7, 6, 2, 1}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{1, 3, 6, 7, 9}, true, true},
		{[]int{5, 1, 2, 3}, false, true},
		{[]int{4}, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.safe, safe(tt.levels), "safe(%v)", tt.levels)
		assert.Equal(t, tt.dampened, safeDampened(tt.levels), "safeDampened(%v)", tt.levels)
	}
}
