package main

import (
	"strings"

	"github.com/puzzlekit/aoc"
)

// keypad maps each button to its position. gap is the empty corner no
// arm may pass over.
type keypad struct {
	keys map[byte]aoc.Pt
	gap  aoc.Pt
}

func newKeypad(rows ...string) keypad {
	kp := keypad{keys: make(map[byte]aoc.Pt)}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == ' ' {
				kp.gap = aoc.Pt{X: x, Y: y}
				continue
			}
			kp.keys[row[x]] = aoc.Pt{X: x, Y: y}
		}
	}
	return kp
}

var (
	numericPad = newKeypad(
		"789",
		"456",
		"123",
		" 0A",
	)
	directionalPad = newKeypad(
		" ^A",
		"<v>",
	)
)

// move returns the presses on the next keypad up that move the arm of kp
// from button a to button b and press it.
//
// Moves are grouped per axis so that repeated presses stay cheap, in the
// order < v ^ >, unless that would pass over the gap.
func (kp keypad) move(a, b byte) []byte {
	from, to := kp.keys[a], kp.keys[b]
	dx, dy := to.X-from.X, to.Y-from.Y
	horiz := strings.Repeat(">", max(dx, 0)) + strings.Repeat("<", max(-dx, 0))
	vert := strings.Repeat("v", max(dy, 0)) + strings.Repeat("^", max(-dy, 0))
	var seq string
	switch {
	case dx < 0 && (aoc.Pt{X: to.X, Y: from.Y}) != kp.gap:
		seq = horiz + vert
	case dx < 0:
		seq = vert + horiz
	case (aoc.Pt{X: from.X, Y: to.Y}) != kp.gap:
		seq = vert + horiz
	default:
		seq = horiz + vert
	}
	return []byte(seq + "A")
}

// sequence returns the presses on the next keypad up that type code on
// kp, starting from A.
func (kp keypad) sequence(code []byte) []byte {
	var out []byte
	cur := byte('A')
	for _, c := range code {
		out = append(out, kp.move(cur, c)...)
		cur = c
	}
	return out
}

type pressState struct {
	Seq   []byte
	Depth int
}

// presses returns how many presses the human needs to make for seq to be
// typed on a directional keypad that is depth robots away.
func presses(seq []byte, depth int, memo *aoc.HashMemo[pressState, int]) int {
	return memo.Do(pressState{seq, depth}, func() int {
		n := 0
		cur := byte('A')
		for _, c := range seq {
			next := directionalPad.move(cur, c)
			if depth == 1 {
				n += len(next)
			} else {
				n += presses(next, depth-1, memo)
			}
			cur = c
		}
		return n
	})
}

// complexity returns the sum over codes of the shortest human sequence
// length times the numeric part of the code.
func complexity(codes []string, robots int, memo *aoc.HashMemo[pressState, int]) int {
	total := 0
	for _, code := range codes {
		seq := numericPad.sequence([]byte(code))
		total += presses(seq, robots, memo) * aoc.Int(strings.TrimSuffix(code, "A"))
	}
	return total
}

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	return complexity(s.Lines(), 2, aoc.NewHashMemo[pressState, int]())
}

// want=154115708116294
func (s solver) D21p2() any {
	memo := aoc.NewHashMemo[pressState, int]()
	c := complexity(s.Lines(), 25, memo)
	s.Debug("press states:", memo.Len(), "hits:", memo.Hits())
	return c
}
