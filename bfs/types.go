package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[W weight.Weight, E pgraph.EdgeLike[W, E]] func(*Options[W, E])

// Options holds parameters and callbacks to customize BFS execution.
type Options[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false. Called for each
	// candidate edge curr->neighbor before it is enqueued.
	FilterNeighbor func(e E) bool

	// forbidFrom, forbidTo name one edge (undirected) that enqueueNeighbors
	// must never cross, regardless of FilterNeighbor. Set by
	// WithForbiddenEdge; (-1,-1) means no forbidden edge.
	forbidFrom, forbidTo int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no forbidden edge
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[W weight.Weight, E pgraph.EdgeLike[W, E]]() Options[W, E] {
	return Options[W, E]{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(E) bool { return true },
		forbidFrom:     -1,
		forbidTo:       -1,
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[W weight.Weight, E pgraph.EdgeLike[W, E]](ctx context.Context) Option[W, E] {
	return func(o *Options[W, E]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[W weight.Weight, E pgraph.EdgeLike[W, E]](fn func(id, depth int)) Option[W, E] {
	return func(o *Options[W, E]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[W weight.Weight, E pgraph.EdgeLike[W, E]](fn func(id, depth int)) Option[W, E] {
	return func(o *Options[W, E]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[W weight.Weight, E pgraph.EdgeLike[W, E]](fn func(id, depth int) error) Option[W, E] {
	return func(o *Options[W, E]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive): vertices at
// depth d are still reached, nothing beyond them is.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option -> ErrOptionViolation
func WithMaxDepth[W weight.Weight, E pgraph.EdgeLike[W, E]](d int) Option[W, E] {
	return func(o *Options[W, E]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips a candidate edge when fn returns false.
func WithFilterNeighbor[W weight.Weight, E pgraph.EdgeLike[W, E]](fn func(e E) bool) Option[W, E] {
	return func(o *Options[W, E]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithForbiddenEdge excludes the undirected edge {u,v} from traversal in
// either direction, independent of FilterNeighbor. Used by package
// diversion to search the primal graph as though the diversion edge had
// been removed.
func WithForbiddenEdge[W weight.Weight, E pgraph.EdgeLike[W, E]](u, v int) Option[W, E] {
	return func(o *Options[W, E]) {
		o.forbidFrom, o.forbidTo = u, v
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree.
//   - predEdge: map from vertex to the edge its predecessor used to reach it,
//     backing EdgePathTo.
type Result[W weight.Weight, E pgraph.EdgeLike[W, E]] struct {
	Order    []int
	Depth    map[int]int
	Parent   map[int]int
	predEdge map[int]E
}

// PathTo reconstructs the vertex path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *Result[W, E]) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}

	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// EdgePathTo reconstructs the sequence of edges traversed from the start
// vertex to dest, in order. Returns ok=false if dest was not reached.
func (r *Result[W, E]) EdgePathTo(dest int) ([]E, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}

	var path []E
	for cur := dest; ; {
		e, ok := r.predEdge[cur]
		if !ok {
			break
		}
		path = append(path, e)
		cur = e.From()
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
