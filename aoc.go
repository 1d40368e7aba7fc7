// Package aoc is a toolkit for solving Advent of Code puzzles: a harness
// that checks samples and times answers, plus grids, graphs, a Dijkstra
// engine and memoization helpers.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"reflect"
	"strings"
	"sync"
)

// Puzzle is embedded by solvers. It gives access to the input of the part
// being solved, which is its sample in sample mode.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte // real input, loaded once per day
	out     io.Writer
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = loadInput(p.year, p.day.day)
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input with its line number.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	for y := 0; s.Scan(); y++ {
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the non-empty lines of input, trimmed.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	})
	return lines
}

func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.Input())
}

// Text returns the input with surrounding whitespace removed.
func (p *Puzzle) Text() string {
	return strings.TrimSpace(string(p.Input()))
}

// Debug prints v when running with -debug.
func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Fprintln(p.out, v...)
	}
}

// Debugf is like Debug but only prints in sample mode, where traces stay
// short.
func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	MustDo(err)
	return v
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Parallel calls f on every element of in, each in its own goroutine,
// and returns the results in order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var wg sync.WaitGroup
	for i := range in {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = f(in[i])
		}(i)
	}
	wg.Wait()
	return out
}

func Fold[T, R any](in []T, f func(R, T) R, init R) R {
	acc := init
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}

// ParallelMapFold maps in through f concurrently, then folds the results
// in order with reduce.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, reduce func(C, B) C, init C) C {
	return Fold(Parallel(in, f), reduce, init)
}
