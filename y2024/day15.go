package main

import (
	"strings"

	"github.com/puzzlekit/aoc"
)

var moveDirs = map[rune]aoc.Direction{'^': aoc.Up, '>': aoc.Right, 'v': aoc.Down, '<': aoc.Left}

func parseWarehouse(in string) (aoc.Grid[byte], []aoc.Direction) {
	in = strings.ReplaceAll(in, "\r", "")
	layout, moves, ok := strings.Cut(in, "\n\n")
	if !ok {
		panic("missing robot moves")
	}
	var dirs []aoc.Direction
	for _, c := range moves {
		if d, ok := moveDirs[c]; ok {
			dirs = append(dirs, d)
		}
	}
	return aoc.ParseGrid([]byte(layout)), dirs
}

// widen doubles the width of every cell of g. Boxes become [].
func widen(g aoc.Grid[byte]) aoc.Grid[byte] {
	out := make(aoc.Grid[byte], len(g))
	for y, row := range g {
		for _, c := range row {
			switch c {
			case 'O':
				out[y] = append(out[y], '[', ']')
			case '@':
				out[y] = append(out[y], '@', '.')
			default:
				out[y] = append(out[y], c, c)
			}
		}
	}
	return out
}

// push moves the robot at p one step in d, pushing every box in the way,
// unless something ends up against a wall. It returns the robot's new
// position.
func push(g aoc.Grid[byte], p aoc.Pt, d aoc.Direction) aoc.Pt {
	delta := d.Delta()
	vertical := d == aoc.Up || d == aoc.Down
	seen := map[aoc.Pt]bool{p: true}
	var moving []aoc.Pt
	q := aoc.NewQueue(p)
	blocked := false
	q.While(func(c aoc.Pt) bool {
		moving = append(moving, c)
		next := c.Add(delta)
		var add []aoc.Pt
		switch g.At(next) {
		case '#':
			blocked = true
			return false
		case 'O':
			add = append(add, next)
		case '[':
			add = append(add, next)
			if vertical {
				add = append(add, next.Add(aoc.Right.Delta()))
			}
		case ']':
			add = append(add, next)
			if vertical {
				add = append(add, next.Add(aoc.Left.Delta()))
			}
		}
		for _, n := range add {
			if !seen[n] {
				seen[n] = true
				q.Push(n)
			}
		}
		return true
	})
	if blocked {
		return p
	}
	for i := len(moving) - 1; i >= 0; i-- {
		c := moving[i]
		g.Set(c.Add(delta), g.At(c))
		g.Set(c, '.')
	}
	return p.Add(delta)
}

// gpsSum runs the robot through moves and sums the GPS coordinates of
// the boxes where they end up.
func gpsSum(g aoc.Grid[byte], moves []aoc.Direction) int {
	bot := aoc.MustFind(g, '@')
	for _, d := range moves {
		bot = push(g, bot, d)
	}
	sum := 0
	g.ForEach(func(p aoc.Pt, c byte) {
		if c == 'O' || c == '[' {
			sum += 100*p.Y + p.X
		}
	})
	return sum
}

/*
want=2028

########
#..O.O.#
##@.O..#
#...O..#
#.#.O..#
#...O..#
#......#
########

<^^>>>vv<v>>v<<
*/
func (s solver) D15p1() any {
	return gpsSum(parseWarehouse(s.Text()))
}

/*
want=618

#######
#...#.#
#.....#
#..OO@#
#..O..#
#.....#
#######

<vv<<^^<<^^
*/
func (s solver) D15p2() any {
	g, moves := parseWarehouse(s.Text())
	return gpsSum(widen(g), moves)
}
