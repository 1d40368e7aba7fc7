package aoc

import "math"

// Inf is the tentative cost of a node that has not been reached yet.
const Inf = math.MaxInt

// NeighborFunc yields the neighbours of n along with the weight of the
// edge leading to each. Weights must be non-negative and the function
// must return the same edges every time it is called for n. An edge whose
// cost would reach Inf is ignored.
type NeighborFunc[N comparable] func(n N, yield func(next N, weight int))

// ShortestPaths is the result of Dijkstra.
type ShortestPaths[N comparable] struct {
	Source N

	// Cost holds the minimum cost from Source of every finalized node.
	// Unreachable nodes are absent.
	Cost map[N]int

	// Order lists the finalized nodes in the order they were popped,
	// which is non-decreasing in cost.
	Order []N

	// Prev maps a node to every node that reaches it at its minimum
	// cost. It is nil unless WithPredecessors was given.
	Prev map[N][]N
}

// SearchOption configures Dijkstra.
type SearchOption[N comparable] func(*search[N])

// WithUniverse registers the full set of nodes up front at infinite cost.
// Neighbours outside the universe are skipped, so walls and out of bounds
// cells can simply be left out of it.
func WithUniverse[N comparable](nodes ...N) SearchOption[N] {
	return func(s *search[N]) {
		s.bounded = true
		for _, n := range nodes {
			s.register(n, Inf)
		}
	}
}

// WithPredecessors records, for every node, all predecessors achieving
// its minimum cost so that best paths can be reconstructed.
func WithPredecessors[N comparable]() SearchOption[N] {
	return func(s *search[N]) {
		s.sp.Prev = make(map[N][]N)
	}
}

// WithTarget stops the search once a node matching isTarget has been
// finalized and nothing left in the frontier can tie with it.
func WithTarget[N comparable](isTarget func(N) bool) SearchOption[N] {
	return func(s *search[N]) {
		s.isTarget = isTarget
	}
}

type search[N comparable] struct {
	sp       *ShortestPaths[N]
	pq       *PQ[N]
	items    map[N]*PQI[N] // nodes still in pq
	bounded  bool
	isTarget func(N) bool
}

func (s *search[N]) register(n N, cost int) *PQI[N] {
	it := &PQI[N]{V: n, P: cost}
	s.items[n] = it
	s.pq.Push(it)
	return it
}

// Dijkstra computes the minimum cost from source to every node reachable
// through neighbors.
func Dijkstra[N comparable](source N, neighbors NeighborFunc[N], opts ...SearchOption[N]) *ShortestPaths[N] {
	s := &search[N]{
		sp: &ShortestPaths[N]{
			Source: source,
			Cost:   make(map[N]int),
		},
		pq:    MinQueue[N](),
		items: make(map[N]*PQI[N]),
	}
	for _, o := range opts {
		o(s)
	}
	if it, ok := s.items[source]; ok {
		it.P = 0
		s.pq.Update(it)
	} else {
		s.register(source, 0)
	}

	targetCost := Inf
	for s.pq.Len() > 0 {
		if s.pq.Peek().P > targetCost {
			break
		}
		u := s.pq.Pop()
		if u.P == Inf {
			// Everything left is unreachable.
			break
		}
		delete(s.items, u.V)
		s.sp.Cost[u.V] = u.P
		s.sp.Order = append(s.sp.Order, u.V)
		neighbors(u.V, func(v N, w int) {
			if _, done := s.sp.Cost[v]; done {
				return
			}
			if w >= Inf-u.P {
				return
			}
			cost := u.P + w
			it, ok := s.items[v]
			if !ok {
				if s.bounded {
					return
				}
				it = s.register(v, Inf)
			}
			switch {
			case cost < it.P:
				it.P = cost
				s.pq.Update(it)
				if s.sp.Prev != nil {
					s.sp.Prev[v] = []N{u.V}
				}
			case cost == it.P:
				if s.sp.Prev != nil {
					s.sp.Prev[v] = append(s.sp.Prev[v], u.V)
				}
			}
		})
		if s.isTarget != nil && u.P < targetCost && s.isTarget(u.V) {
			targetCost = u.P
		}
	}
	return s.sp
}

// CostTo returns the minimum cost of reaching n. It reports false if n
// is unreachable.
func (sp *ShortestPaths[N]) CostTo(n N) (int, bool) {
	c, ok := sp.Cost[n]
	return c, ok
}

// Best returns every finalized node matching match that has the lowest
// cost among such nodes, in finalization order.
func (sp *ShortestPaths[N]) Best(match func(N) bool) (nodes []N, cost int, ok bool) {
	cost = Inf
	for _, n := range sp.Order {
		if !match(n) {
			continue
		}
		switch c := sp.Cost[n]; {
		case c < cost:
			cost = c
			nodes = append(nodes[:0], n)
		case c == cost:
			nodes = append(nodes, n)
		}
	}
	return nodes, cost, len(nodes) > 0
}

// PathNodes returns the set of nodes lying on any minimum cost path from
// the source to one of targets, both ends included. It requires
// WithPredecessors. Unreachable targets are ignored.
func (sp *ShortestPaths[N]) PathNodes(targets ...N) map[N]bool {
	seen := make(map[N]bool)
	var st Stack[N]
	for _, t := range targets {
		if _, ok := sp.Cost[t]; ok && !seen[t] {
			seen[t] = true
			st.Push(t)
		}
	}
	st.While(func(n N) bool {
		if n == sp.Source {
			return true
		}
		for _, p := range sp.Prev[n] {
			if !seen[p] {
				seen[p] = true
				st.Push(p)
			}
		}
		return true
	})
	return seen
}

// PathTo returns one minimum cost path from the source to target, source
// first. It requires WithPredecessors and returns nil if target is
// unreachable.
func (sp *ShortestPaths[N]) PathTo(target N) []N {
	if _, ok := sp.Cost[target]; !ok {
		return nil
	}
	path := []N{target}
	for n := target; n != sp.Source; {
		prev := sp.Prev[n]
		if len(prev) == 0 {
			return nil
		}
		n = prev[0]
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
