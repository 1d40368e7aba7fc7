package main

import (
	"fmt"

	"github.com/puzzlekit/aoc"
)

type robot struct {
	p, v aoc.Pt
}

func parseRobots(lines []string) []robot {
	out := make([]robot, len(lines))
	for i, line := range lines {
		r := &out[i]
		aoc.MustGet(fmt.Sscanf(line, "p=%d,%d v=%d,%d", &r.p.X, &r.p.Y, &r.v.X, &r.v.Y))
	}
	return out
}

func wrap(n, size int) int {
	return ((n % size) + size) % size
}

// at returns where r is after t seconds in a space of the given size,
// whose edges wrap around.
func (r robot) at(t int, size aoc.Pt) aoc.Pt {
	return aoc.Pt{X: wrap(r.p.X+r.v.X*t, size.X), Y: wrap(r.p.Y+r.v.Y*t, size.Y)}
}

// safetyFactor multiplies the number of robots in each quadrant after t
// seconds. Robots on the middle lines are in no quadrant.
func safetyFactor(robots []robot, t int, size aoc.Pt) int {
	var quadrants [4]int
	mid := aoc.Pt{X: size.X / 2, Y: size.Y / 2}
	for _, r := range robots {
		p := r.at(t, size)
		if p.X == mid.X || p.Y == mid.Y {
			continue
		}
		q := 0
		if p.X > mid.X {
			q++
		}
		if p.Y > mid.Y {
			q += 2
		}
		quadrants[q]++
	}
	return quadrants[0] * quadrants[1] * quadrants[2] * quadrants[3]
}

// firstSpread returns the first second at which no two robots share a
// tile. Positions repeat after the LCM of the space's sides.
func firstSpread(robots []robot, size aoc.Pt) (int, bool) {
	period := aoc.LCM(size.X, size.Y)
	for t := 0; t < period; t++ {
		seen := make(map[aoc.Pt]bool, len(robots))
		overlap := false
		for _, r := range robots {
			p := r.at(t, size)
			if seen[p] {
				overlap = true
				break
			}
			seen[p] = true
		}
		if !overlap {
			return t, true
		}
	}
	return 0, false
}

func (s solver) bathroomSize() aoc.Pt {
	if s.SampleMode {
		return aoc.Pt{X: 11, Y: 7}
	}
	return aoc.Pt{X: 101, Y: 103}
}

/*
want=12

p=0,4 v=3,-3
p=6,3 v=-1,-3
p=10,3 v=-1,2
p=2,0 v=2,-1
p=0,0 v=1,3
p=3,0 v=-2,-2
p=7,6 v=-1,-3
p=3,0 v=-1,-2
p=9,3 v=2,3
p=7,3 v=-1,2
p=2,4 v=2,-3
p=9,5 v=-3,-3
*/
func (s solver) D14p1() any {
	return safetyFactor(parseRobots(s.Lines()), 100, s.bathroomSize())
}

// want=1
func (s solver) D14p2() any {
	t, ok := firstSpread(parseRobots(s.Lines()), s.bathroomSize())
	if !ok {
		panic("robots always overlap")
	}
	return t
}
