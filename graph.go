package aoc

import (
	"golang.org/x/exp/maps"
)

// Graph is an undirected weighted graph.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if g.Edges[b] == nil {
		g.Edges[b] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.Edges[b][a] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Neighbors calls yield for every edge leaving a. It matches NeighborFunc
// so that a Graph can be searched with Dijkstra.
func (g *Graph[K]) Neighbors(a K, yield func(b K, dist int)) {
	for b, d := range g.Edges[a] {
		yield(b, d)
	}
}

// Triangles returns every set of three mutually connected nodes once.
func (g *Graph[K]) Triangles() [][3]K {
	nodes := maps.Keys(g.Nodes)
	idx := make(map[K]int, len(nodes))
	for i, n := range nodes {
		idx[n] = i
	}
	var out [][3]K
	for _, a := range nodes {
		for b := range g.Edges[a] {
			if idx[b] <= idx[a] {
				continue
			}
			for c := range g.Edges[b] {
				if idx[c] <= idx[b] {
					continue
				}
				if _, ok := g.Edges[a][c]; ok {
					out = append(out, [3]K{a, b, c})
				}
			}
		}
	}
	return out
}

// MaximalCliques returns every maximal clique of g using Bron–Kerbosch
// with pivoting.
func (g *Graph[K]) MaximalCliques() [][]K {
	var out [][]K
	g.bronKerbosch(nil, maps.Clone(g.Nodes), map[K]bool{}, &out)
	return out
}

// bronKerbosch extends the clique r with candidates p, never reporting a
// clique that could also take a node from x.
func (g *Graph[K]) bronKerbosch(r []K, p, x map[K]bool, out *[][]K) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			*out = append(*out, r)
		}
		return
	}
	var (
		pivot K
		best  = -1
	)
	for _, set := range []map[K]bool{p, x} {
		for v := range set {
			if d := len(g.Edges[v]); d > best {
				pivot, best = v, d
			}
		}
	}
	var vs []K
	for v := range p {
		if _, ok := g.Edges[pivot][v]; !ok {
			vs = append(vs, v)
		}
	}
	for _, v := range vs {
		np, nx := map[K]bool{}, map[K]bool{}
		for n := range g.Edges[v] {
			if p[n] {
				np[n] = true
			}
			if x[n] {
				nx[n] = true
			}
		}
		nr := append(r[:len(r):len(r)], v)
		g.bronKerbosch(nr, np, nx, out)
		delete(p, v)
		x[v] = true
	}
}

// MaxClique returns the largest clique of g.
func (g *Graph[K]) MaxClique() []K {
	var best []K
	for _, c := range g.MaximalCliques() {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
