package main

import (
	"strings"
	"testing"

	"github.com/puzzlekit/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fallingSample = strings.Fields(`
5,4 4,2 4,5 3,0 2,1 6,3 2,4 1,5 0,6 3,3 2,6 5,1 1,2
5,5 2,5 6,5 1,4 0,4 6,4 1,1 6,1 1,0 0,5 1,6 2,0
`)

func TestEscape(t *testing.T) {
	falling := parseBytes(fallingSample)
	require.Len(t, falling, 25)

	steps, ok := escape(falling, 6, 12)
	require.True(t, ok)
	assert.Equal(t, 22, steps)

	steps, ok = escape(falling, 6, 0)
	require.True(t, ok)
	assert.Equal(t, 12, steps)

	_, ok = escape(falling, 6, len(falling))
	assert.False(t, ok)
}

func TestFirstBlocker(t *testing.T) {
	b, ok := firstBlocker(parseBytes(fallingSample), 6)
	require.True(t, ok)
	assert.Equal(t, aoc.Pt{X: 6, Y: 1}, b)
	assert.Equal(t, "6,1", b.String())

	_, ok = firstBlocker(parseBytes([]string{"1,1"}), 6)
	assert.False(t, ok)
}
