package derigs

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/planarcut/basis"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// engine holds the mutable state of one ShortestOddPath search. Grounded on
// the original implementation's DerigsAlgorithm.
type engine[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	opts Options

	graph  *pgraph.UndirectedGraph[W, E] // the mirror (double-cover) graph
	dPlus  []weight.Cost[W]
	dMinus []weight.Cost[W]
	pred   []*E
	basis  basis.Basis

	s, t             int
	origN            int
	completed        []bool
	inCurrentBlossom []bool
	pq               todoHeap[W, E]
}

func newEngine[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], s, t int, opts Options) *engine[W, E] {
	mirror := mirrorGraph[W](g, s, t)
	n := mirror.VertexCount()
	origN := g.VertexCount()

	dPlus := make([]weight.Cost[W], n)
	dMinus := make([]weight.Cost[W], n)
	for i := range dPlus {
		dPlus[i] = weight.Infinite[W]()
		dMinus[i] = weight.Infinite[W]()
	}

	eng := &engine[W, E]{
		opts:             opts,
		graph:            mirror,
		dPlus:            dPlus,
		dMinus:           dMinus,
		pred:             make([]*E, n),
		basis:            basis.NewUnionFind(n),
		s:                s,
		t:                t,
		origN:            origN,
		completed:        make([]bool, n),
		inCurrentBlossom: make([]bool, n),
	}

	eng.dPlus[s] = weight.Finite(zeroOf[W]())
	for _, e := range mirror.N(s) {
		heap.Push(&eng.pq, todoItem[W, E]{kind: todoVertex, w: e.Weight(), u: e.To()})
		eng.dMinus[e.To()] = weight.Finite(e.Weight())
		eng.pred[e.To()] = &e
	}
	eng.completed[s] = true
	eng.completed[s+origN] = true

	return eng
}

func zeroOf[W weight.Weight]() W {
	var z W

	return z
}

// solve runs the search to completion and reconstructs the shortest odd
// s-t path, if one exists.
func (eng *engine[W, E]) solve() PathResult[W, E] {
	if eng.s == eng.t {
		return Impossible[W, E]()
	}

	for !eng.control() {
	}

	if eng.dMinus[eng.t].IsInfinite() {
		if eng.opts.Verbose {
			fmt.Printf("derigs: no odd %d-%d path exists\n", eng.s, eng.t)
		}

		return Impossible[W, E]()
	}

	curr := *eng.pred[eng.t]
	cost := curr.Weight()
	path := []E{curr}
	for curr.From() != eng.s {
		curr = *eng.pred[eng.mirror(curr.From())]
		cost += curr.Weight()
		if curr.From() < eng.origN {
			path = append(path, curr)
		} else {
			path = append(path, curr.ShiftBy(-eng.origN))
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if eng.opts.Verbose {
		fmt.Printf("derigs: odd path of cost %v found, %d edges\n", cost, len(path))
	}

	return Possible(cost, path)
}

// control pops the queue's front entry, discarding stale ones, and processes
// it. Returns true once the search is done: either t was popped from the
// queue, or the queue emptied with no odd path found.
func (eng *engine[W, E]) control() bool {
	for eng.pq.Len() > 0 {
		top := eng.pq[0]
		stale := false
		switch top.kind {
		case todoVertex:
			stale = eng.completed[top.u]
		case todoBlossom:
			stale = eng.basis.SameBase(top.e.From(), top.e.To())
		}
		if !stale {
			break
		}
		heap.Pop(&eng.pq)
	}

	if eng.pq.Len() == 0 {
		return true
	}

	item := heap.Pop(&eng.pq).(todoItem[W, E])
	switch item.kind {
	case todoVertex:
		if item.u == eng.t {
			return true
		}
		m := eng.mirror(item.u)
		eng.dPlus[m] = eng.dMinus[item.u]
		eng.scan(m)
	case todoBlossom:
		eng.blossom(item.e)
	}

	return false
}

// scan relaxes every edge leaving u, the mirror of a just-completed vertex.
func (eng *engine[W, E]) scan(u int) {
	eng.completed[u] = true
	distU, ok := eng.dPlus[u].Value()
	if !ok {
		panic(fmt.Sprintf("derigs: scan(%d) called but d_plus[%d] is undefined", u, u))
	}

	for _, e := range eng.graph.N(u) {
		w := e.Weight()
		v := e.To()
		newDistV := distU + w

		if !eng.completed[v] {
			if !weight.Finite(newDistV).Less(eng.dMinus[v]) {
				continue
			}
			eng.dMinus[v] = weight.Finite(newDistV)
			edge := e
			eng.pred[v] = &edge
			heap.Push(&eng.pq, todoItem[W, E]{kind: todoVertex, w: newDistV, u: v})

			continue
		}

		if dv, finite := eng.dPlus[v].Value(); finite && !eng.basis.SameBase(u, v) {
			heap.Push(&eng.pq, todoItem[W, E]{kind: todoBlossom, w: distU + dv + w, e: e})
			if weight.Finite(newDistV).Less(eng.dMinus[v]) {
				eng.dMinus[v] = weight.Finite(newDistV)
				edge := e
				eng.pred[v] = &edge
			}
		}
	}
}

// blossom contracts the even cycle closed by e: it backtracks both
// half-paths to their meeting point, assigns provisional d_minus/d_plus
// values along each half, unions every vertex on the cycle under one base,
// and resumes scanning from whatever newly-finite d_plus values resulted.
func (eng *engine[W, E]) blossom(e E) {
	b, p1, p2 := eng.backtrackBlossom(e)

	s1 := eng.setBlossomValues(p1)
	s2 := eng.setBlossomValues(p2)

	eng.setEdgeBases(b, p1)
	eng.setEdgeBases(b, p2)

	for _, u := range s1 {
		eng.scan(u)
	}
	for _, v := range s2 {
		eng.scan(v)
	}
}

// backtrackBlossom walks the predecessor chains from e's two endpoints back
// towards s in lockstep, alternating sides, until one side revisits a vertex
// already marked as on the other side's path — that vertex is the blossom's
// base, and p1/p2 are the two half-paths from the base out to e.
func (eng *engine[W, E]) backtrackBlossom(e E) (int, []E, []E) {
	p1 := []E{e.Reverse()}
	p2 := []E{e}

	u := eng.basis.Get(e.To())
	v := eng.basis.Get(e.From())

	eng.inCurrentBlossom[u] = true
	eng.inCurrentBlossom[v] = true

	for {
		if u != eng.s {
			u = eng.basis.Get(eng.mirror(u))
			eng.inCurrentBlossom[u] = true

			pe := eng.pred[u]
			if pe == nil {
				panic(fmt.Sprintf("derigs: pred[%d] is undefined", u))
			}
			edge := *pe
			u = eng.basis.Get(edge.From())
			p1 = append(p1, edge)

			if eng.inCurrentBlossom[u] {
				p1 = p1[:len(p1)-1]
				eng.inCurrentBlossom[u] = false
				for len(p2) > 0 {
					last := p2[len(p2)-1]
					vv := eng.basis.Get(last.From())
					eng.inCurrentBlossom[vv] = false
					p2 = p2[:len(p2)-1]
					if vv == u {
						break
					}
				}

				return u, p1, p2
			}
			eng.inCurrentBlossom[u] = true
		}

		if v != eng.s {
			v = eng.basis.Get(eng.mirror(v))
			eng.inCurrentBlossom[v] = true

			pe := eng.pred[v]
			if pe == nil {
				panic(fmt.Sprintf("derigs: pred[%d] is undefined", v))
			}
			edge := *pe
			v = eng.basis.Get(edge.From())
			p2 = append(p2, edge)

			if eng.inCurrentBlossom[v] {
				p2 = p2[:len(p2)-1]
				eng.inCurrentBlossom[v] = false
				for len(p1) > 0 {
					last := p1[len(p1)-1]
					uu := eng.basis.Get(last.From())
					eng.inCurrentBlossom[uu] = false
					p1 = p1[:len(p1)-1]
					if uu == v {
						break
					}
				}

				return v, p1, p2
			}
			eng.inCurrentBlossom[v] = true
		}
	}
}

// setEdgeBases unions every edge endpoint on path (and its mirror) under
// base b.
func (eng *engine[W, E]) setEdgeBases(b int, path []E) {
	for _, e := range path {
		u := e.From()
		m := eng.mirror(u)
		eng.basis.SetBase(u, b)
		eng.basis.SetBase(m, b)
	}
}

// setBlossomValues walks path from the base outward, propagating a
// provisional d_minus to each edge's tail and, where that improves the
// tail's mirror's d_plus, returning the mirror for a follow-up scan.
func (eng *engine[W, E]) setBlossomValues(path []E) []int {
	var ready []int
	for _, e := range path {
		u, v, w := e.From(), e.To(), e.Weight()
		eng.inCurrentBlossom[u] = false
		eng.inCurrentBlossom[v] = false

		candidate := eng.dPlus[v].Add(weight.Finite(w))
		if candidate.Less(eng.dMinus[u]) {
			eng.dMinus[u] = candidate
			edge := e.Reverse()
			eng.pred[u] = &edge
		}

		m := eng.mirror(u)
		if eng.dMinus[u].Less(eng.dPlus[m]) {
			eng.dPlus[m] = eng.dMinus[u]
			ready = append(ready, m)
		}
	}

	return ready
}

func (eng *engine[W, E]) mirror(u int) int {
	if u < eng.origN {
		return u + eng.origN
	}

	return u - eng.origN
}
