// File: methods_edges.go
// Role: Edge lifecycle: AddEdge/DeleteEdges/FindEdges/Edges/EdgeCount.
// Concurrency: mutations under muEdgeAdj write lock, reads under its read lock.

package pgraph

import "github.com/katalvlaran/planarcut/weight"

// AddEdge inserts e and its reverse, mirroring both directions the way an
// undirected adjacency list must. Complexity: O(1) amortized.
func (g *UndirectedGraph[W, E]) AddEdge(e E) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	rev := e.Reverse()
	g.adj[e.From()] = append(g.adj[e.From()], e)
	g.adj[rev.From()] = append(g.adj[rev.From()], rev)
	g.m++
}

// FindEdges returns every half-edge u->v currently in the adjacency list
// (more than one only when the graph carries parallel edges).
// Complexity: O(deg(u)).
func (g *UndirectedGraph[W, E]) FindEdges(u, v int) []E {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []E
	for _, e := range g.adj[u] {
		if e.To() == v {
			out = append(out, e)
		}
	}

	return out
}

// DeleteEdges removes, for every half-edge u->v in es, all half-edges u->v
// (parallel copies included) along with their mirrors, and lowers EdgeCount
// accordingly. Complexity: O(len(es) * max(deg)).
func (g *UndirectedGraph[W, E]) DeleteEdges(es []E) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	for _, e := range es {
		before := len(g.adj[e.From()])
		g.adj[e.From()] = filterOut(g.adj[e.From()], e.To())
		removed := before - len(g.adj[e.From()])
		if e.From() == e.To() {
			removed /= 2 // a self-loop stores both of its half-edges in one bucket
		}
		g.adj[e.To()] = filterOut(g.adj[e.To()], e.From())
		g.m -= removed
	}
}

func filterOut[W weight.Weight, E EdgeLike[W, E]](edges []E, to int) []E {
	out := edges[:0:0]
	for _, e := range edges {
		if e.To() != to {
			out = append(out, e)
		}
	}

	return out
}

// Edges returns every half-edge stored in the graph (both directions of
// each inserted edge). Complexity: O(V+E).
func (g *UndirectedGraph[W, E]) Edges() []E {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]E, 0, 2*g.m)
	for _, bucket := range g.adj {
		out = append(out, bucket...)
	}

	return out
}

// EdgeCount returns the number of undirected edges (not half-edges).
func (g *UndirectedGraph[W, E]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.m
}
