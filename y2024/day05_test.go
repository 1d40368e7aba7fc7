package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintQueue(t *testing.T) {
	pq := parsePrintQueue("47|53\n97|13\n97|47\n\n97,47,53\n53,47,97\n47,13\n")
	require.Len(t, pq.rules, 3)
	require.Len(t, pq.updates, 3)

	assert.Equal(t, -1, pq.compare(47, 53))
	assert.Equal(t, 1, pq.compare(53, 47))
	assert.Equal(t, 0, pq.compare(47, 13))

	ordered, reordered := pq.middleSums()
	assert.Equal(t, 47+13, ordered)
	assert.Equal(t, 47, reordered)
	assert.Equal(t, []int{53, 47, 97}, pq.updates[1], "updates are reordered on a copy")
}
