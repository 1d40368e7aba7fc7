package aoc

import (
	"bytes"
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.InBounds(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// InBounds reports whether p lies within the grid.
func (g Grid[T]) InBounds(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid parses newline separated rows of bytes. Surrounding
// whitespace is ignored.
func ParseGrid(in []byte) Grid[byte] {
	var g Grid[byte]
	for _, line := range bytes.Split(bytes.TrimSpace(in), []byte("\n")) {
		g = append(g, bytes.TrimRight(line, "\r"))
	}
	return g
}

// Transpose returns g mirrored along its main diagonal, so that its rows
// are the columns of g.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.ForEach(func(p Pt, v T) {
		out[p.X][p.Y] = v
	})
	return out
}

// RotateCounterClockwise returns g turned a quarter turn counter
// clockwise: the last column of g becomes the first row.
func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	out := g.Transpose()
	slices.Reverse(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(p Pt, v T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// Find returns the first cell equal to v in row-major order.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	for y, row := range g {
		for x, c := range row {
			if c == v {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// MustFind is like Find but panics if v is not in the grid.
func MustFind[T comparable](g Grid[T], v T) Pt {
	p, ok := Find(g, v)
	if !ok {
		panic(fmt.Sprintf("%v not found in grid", v))
	}
	return p
}

// Region returns the 4-connected cells holding the same value as start,
// and the perimeter of that region: the number of cell edges facing a
// different value or the outside of the grid.
func Region[T comparable](g Grid[T], start Pt) (region map[Pt]bool, perimeter int) {
	v := g.At(start)
	region = map[Pt]bool{start: true}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if c, ok := g.AtOk(n); !ok || c != v {
				perimeter++
				return true
			}
			if !region[n] {
				region[n] = true
				q.Push(n)
			}
			return true
		})
		return true
	})
	return region, perimeter
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Step returns the path moved one cell forward in its direction.
func (p Path) Step() Path {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	return p
}

// Move steps p forward. It reports false if that leaves the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p = p.Step()
	if !g.InBounds(p.Pt) {
		return Path{}, false
	}
	return p, true
}

// Direction is a heading on a grid whose Y axis grows downwards.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

var (
	dirDeltas  = [...]Pt{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	dirSymbols = [...]string{"^", ">", "v", "<"}
)

// Turn rotates d a quarter turn, clockwise if right is set.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction { return (d + 2) % 4 }

// Delta returns the unit step for d.
func (d Direction) Delta() Pt { return dirDeltas[d] }

func (d Direction) String() string {
	if d < 0 || int(d) >= len(dirSymbols) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return dirSymbols[d]
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("%v,%v", p.X, p.Y)
}

// ForImmediateNeighbors calls f for the four points sharing an edge with
// p, clockwise from above, until f returns false.
func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for _, d := range dirDeltas {
		if !f(Pt2[T]{p.X + T(d.X), p.Y + T(d.Y)}) {
			return
		}
	}
}

// ForNeighbors calls f for the eight points around p, diagonals included,
// until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for dy := T(-1); dy <= 1; dy++ {
		for dx := T(-1); dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && !f(Pt2[T]{p.X + dx, p.Y + dy}) {
				return
			}
		}
	}
}

// PointsWithin calls f for every point whose manhattan distance from p is
// at most d, p included, along with that distance.
func (p Pt2[T]) PointsWithin(d T, f func(q Pt2[T], dist T) (keepGoing bool)) {
	for dy := -d; dy <= d; dy++ {
		rem := d - AbsDiff(dy, 0)
		for dx := -rem; dx <= rem; dx++ {
			if !f(Pt2[T]{p.X + dx, p.Y + dy}, AbsDiff(dx, 0)+AbsDiff(dy, 0)) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
