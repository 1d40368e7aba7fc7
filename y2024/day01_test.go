package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationLists(t *testing.T) {
	left, right := parseLists([]string{"3   4", "4   3", "2   5", "1   3", "3   9", "3   3"})
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, left)
	assert.Equal(t, 11, listDistance(left, right))
	assert.Equal(t, []int{3, 4, 2, 1, 3, 3}, left, "lists are sorted in place")
	assert.Equal(t, 31, similarity(left, right))
	assert.Equal(t, 0, similarity([]int{7}, right))
}
