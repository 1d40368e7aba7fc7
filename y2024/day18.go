package main

import (
	"sort"
	"strings"

	"github.com/puzzlekit/aoc"
)

func parseBytes(lines []string) []aoc.Pt {
	var out []aoc.Pt
	for _, line := range lines {
		x, y, ok := strings.Cut(line, ",")
		if !ok {
			panic("bad byte position: " + line)
		}
		out = append(out, aoc.Pt{X: aoc.Int(x), Y: aoc.Int(y)})
	}
	return out
}

func gridMoves(p aoc.Pt, yield func(aoc.Pt, int)) {
	p.ForImmediateNeighbors(func(n aoc.Pt) bool {
		yield(n, 1)
		return true
	})
}

// escape returns the fewest steps from the top left to the bottom right
// of a memory space of the given size once the first fallen bytes have
// landed. It reports false if the exit is cut off.
func escape(falling []aoc.Pt, size, fallen int) (int, bool) {
	corrupted := make(map[aoc.Pt]bool, fallen)
	for _, b := range falling[:fallen] {
		corrupted[b] = true
	}
	var free []aoc.Pt
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			if p := (aoc.Pt{X: x, Y: y}); !corrupted[p] {
				free = append(free, p)
			}
		}
	}
	exit := aoc.Pt{X: size, Y: size}
	sp := aoc.Dijkstra(aoc.Pt{}, gridMoves,
		aoc.WithUniverse(free...),
		aoc.WithTarget(func(p aoc.Pt) bool { return p == exit }),
	)
	return sp.CostTo(exit)
}

// firstBlocker returns the first falling byte that cuts the exit off.
func firstBlocker(falling []aoc.Pt, size int) (aoc.Pt, bool) {
	n := sort.Search(len(falling)+1, func(n int) bool {
		_, ok := escape(falling, size, n)
		return !ok
	})
	if n == 0 || n > len(falling) {
		return aoc.Pt{}, false
	}
	return falling[n-1], true
}

func (s solver) memorySpace() (size, fallen int) {
	if s.SampleMode {
		return 6, 12
	}
	return 70, 1024
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	size, fallen := s.memorySpace()
	steps, ok := escape(parseBytes(s.Lines()), size, fallen)
	if !ok {
		panic("exit unreachable")
	}
	return steps
}

// want=6,1
func (s solver) D18p2() any {
	size, _ := s.memorySpace()
	b, ok := firstBlocker(parseBytes(s.Lines()), size)
	if !ok {
		panic("exit is never cut off")
	}
	s.Debugf("exit cut off by byte %v", b)
	return b
}
