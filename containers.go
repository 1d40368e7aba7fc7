package aoc

import (
	"container/heap"
	"fmt"
	"slices"
)

// Stack is a LIFO worklist.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int { return len(s.s) }

func (s *Stack[T]) Push(v ...T) {
	s.s = append(s.s, v...)
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	return s.s[len(s.s)-1], true
}

func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if ok {
		s.s = s.s[:len(s.s)-1]
	}
	return v, ok
}

// While pops values until the stack is empty or f returns false. f may
// push more values.
func (s *Stack[T]) While(f func(T) bool) {
	drain[T](s, f)
}

// Queue is a FIFO worklist.
type Queue[T any] struct {
	q    []T
	head int
}

// NewQueue returns a queue holding a copy of in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{q: slices.Clone(in)}
}

func (q *Queue[T]) Len() int { return len(q.q) - q.head }

func (q *Queue[T]) Push(v T) {
	if q.head > 0 && q.head == len(q.q) {
		q.q, q.head = q.q[:0], 0
	}
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.Len() == 0 {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	return v, true
}

// While pops values until the queue is empty or f returns false. f may
// push more values.
func (q *Queue[T]) While(f func(T) bool) {
	drain[T](q, f)
}

type worklist[T any] interface {
	Pop() (T, bool)
}

func drain[T any](w worklist[T], f func(T) bool) {
	for {
		v, ok := w.Pop()
		if !ok || !f(v) {
			return
		}
	}
}

// PQI is an item in a PQ. V is the value and P its priority. Callers may
// change P and call PQ.Update to move the item within the queue.
type PQI[T any] struct {
	V  T
	P  int
	ix int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// Index reports the position of the item in its queue, or -1 once it has
// been popped.
func (i *PQI[T]) Index() int {
	return i.ix
}

// PQ is an indexed priority queue. The zero value pops the lowest
// priority first.
type PQ[T any] struct {
	h items[T]
}

// MinQueue returns a PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return new(PQ[T])
}

// MaxQueue returns a PQ that pops the highest priority first.
func MaxQueue[T any]() *PQ[T] {
	return &PQ[T]{h: items[T]{max: true}}
}

func (pq *PQ[T]) Push(v *PQI[T]) { heap.Push(&pq.h, v) }

func (pq *PQ[T]) Pop() *PQI[T] { return heap.Pop(&pq.h).(*PQI[T]) }

// Update restores the heap ordering after v.P was changed.
func (pq *PQ[T]) Update(v *PQI[T]) { heap.Fix(&pq.h, v.ix) }

// Peek returns the next item Pop would return. The queue must not be
// empty.
func (pq *PQ[T]) Peek() *PQI[T] { return pq.h.s[0] }

func (pq *PQ[T]) Len() int { return len(pq.h.s) }

// items implements heap.Interface, keeping every PQI's ix current.
type items[T any] struct {
	s   []*PQI[T]
	max bool
}

func (h items[T]) Len() int { return len(h.s) }

func (h items[T]) Less(i, j int) bool {
	if h.max {
		return h.s[i].P > h.s[j].P
	}
	return h.s[i].P < h.s[j].P
}

func (h items[T]) Swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
	h.s[i].ix, h.s[j].ix = i, j
}

func (h *items[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(h.s)
	h.s = append(h.s, it)
}

func (h *items[T]) Pop() any {
	n := len(h.s) - 1
	it := h.s[n]
	h.s[n] = nil
	h.s = h.s[:n]
	it.ix = -1
	return it
}
