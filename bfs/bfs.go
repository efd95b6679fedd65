package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// queueItem pairs a vertex with its BFS depth and its parent.
type queueItem[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	id     int
	depth  int
	parent int
	hasPar bool
	via    E
}

// walker encapsulates mutable BFS state.
type walker[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	graph   *pgraph.UndirectedGraph[W, E]
	opts    Options[W, E]
	ctx     context.Context
	queue   []queueItem[W, E]
	visited []bool
	res     *Result[W, E]
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Returns ErrGraphNil or
// ErrStartVertexNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func BFS[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], start int, opts ...Option[W, E]) (*Result[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[W, E]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker[W, E]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[W, E], 0, n),
		visited: make([]bool, n),
		res: &Result[W, E]{
			Order:    make([]int, 0, n),
			Depth:    make(map[int]int, n),
			Parent:   make(map[int]int, n),
			predEdge: make(map[int]E, n),
		},
	}

	w.enqueue(queueItem[W, E]{id: start, depth: 0})

	return w.res, w.loop()
}

// enqueue marks item.id visited, records its depth/parent/predecessor edge,
// calls OnEnqueue, and pushes it onto the queue.
func (w *walker[W, E]) enqueue(item queueItem[W, E]) {
	w.visited[item.id] = true
	w.res.Depth[item.id] = item.depth
	if item.hasPar {
		w.res.Parent[item.id] = item.parent
		w.res.predEdge[item.id] = item.via
	}
	w.opts.OnEnqueue(item.id, item.depth)
	w.queue = append(w.queue, item)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[W, E]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[W, E]) dequeue() queueItem[W, E] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[W, E]) visit(item queueItem[W, E]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks the half-edges leaving item.id, applies the
// forbidden-edge exclusion, FilterNeighbor, and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker[W, E]) enqueueNeighbors(item queueItem[W, E]) error {
	for _, e := range w.graph.N(item.id) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.isForbidden(item.id, e.To()) {
			continue
		}
		if !w.opts.FilterNeighbor(e) {
			continue
		}

		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		nbr := e.To()
		if !w.visited[nbr] {
			w.enqueue(queueItem[W, E]{id: nbr, depth: nextDepth, parent: item.id, hasPar: true, via: e})
		}
	}

	return nil
}

func (w *walker[W, E]) isForbidden(u, v int) bool {
	f, t := w.opts.forbidFrom, w.opts.forbidTo
	if f < 0 {
		return false
	}

	return (u == f && v == t) || (u == t && v == f)
}
