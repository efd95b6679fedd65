package derigs

import (
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// todoKind distinguishes the two kinds of pending work in the search queue.
type todoKind int

const (
	// todoVertex is "scan mirror(u), having just learned d_minus[u]=w".
	todoVertex todoKind = iota
	// todoBlossom is "contract the even cycle closed by edge e, of total
	// weight w".
	todoBlossom
)

// todoItem is one entry in the search's priority queue: either a vertex
// ready to scan or an edge closing an even cycle ready to contract.
type todoItem[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	kind todoKind
	w    W
	u    int
	e    E
}

// todoLess orders two items by a "doubled key": a Vertex entry's raw weight
// is compared directly against another Vertex, but doubled whenever the
// comparison is against a Blossom entry. Doubling every Vertex weight
// unconditionally produces exactly this rule in all four kind combinations
// (Vertex-Vertex doubles both sides, which cancels out), so no per-pair case
// analysis is needed.
func todoLess[W weight.Weight, E pgraph.EdgeLike[W, E]](a, b todoItem[W, E]) bool {
	av, bv := a.w, b.w
	if a.kind == todoVertex {
		av += av
	}
	if b.kind == todoVertex {
		bv += bv
	}

	return av < bv
}

// todoHeap is a container/heap min-heap of todoItem, following the lazy
// decrease-key idiom: entries referencing an already-completed vertex or an
// already-contracted edge are left in place and discarded on pop rather than
// removed eagerly.
type todoHeap[W weight.Weight, E pgraph.EdgeLike[W, E]] []todoItem[W, E]

func (h todoHeap[W, E]) Len() int            { return len(h) }
func (h todoHeap[W, E]) Less(i, j int) bool  { return todoLess(h[i], h[j]) }
func (h todoHeap[W, E]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *todoHeap[W, E]) Push(x interface{}) { *h = append(*h, x.(todoItem[W, E])) }
func (h *todoHeap[W, E]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
