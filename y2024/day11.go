package main

import "github.com/puzzlekit/aoc"

type stone struct {
	n      int
	blinks int
}

// blink returns how many stones n turns into after blinks blinks.
func blink(n, blinks int, memo *aoc.Memo[stone, int]) int {
	if blinks == 0 {
		return 1
	}
	return memo.Do(stone{n, blinks}, func() int {
		if n == 0 {
			return blink(1, blinks-1, memo)
		}
		if d := aoc.CountDigits(n); d%2 == 0 {
			l, r := aoc.SplitDigits(n, d/2)
			return blink(l, blinks-1, memo) + blink(r, blinks-1, memo)
		}
		return blink(n*2024, blinks-1, memo)
	})
}

func countStones(stones []int, blinks int, memo *aoc.Memo[stone, int]) int {
	total := 0
	for _, n := range stones {
		total += blink(n, blinks, memo)
	}
	return total
}

/*
want=55312

125 17
*/
func (s solver) D11p1() any {
	return countStones(aoc.Fields(s.Text()), 25, aoc.NewMemo[stone, int]())
}

// want=65601038650482
func (s solver) D11p2() any {
	return countStones(aoc.Fields(s.Text()), 75, aoc.NewMemo[stone, int]())
}
