package pgraph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/planarcut/weight"
)

// Sentinel errors for pgraph operations.
var (
	// ErrVertexRange indicates a vertex index outside [0,n).
	ErrVertexRange = errors.New("pgraph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero was rejected by a
	// caller that requires non-negative weights (see planar.Build).
	ErrNegativeWeight = errors.New("pgraph: negative edge weight")
)

// Edge is a weighted half-edge From->To. The zero value is not meaningful;
// construct with NewEdge.
type Edge[W weight.Weight] struct {
	from, to int
	weight   W
}

// NewEdge constructs a half-edge from->to carrying weight w.
func NewEdge[W weight.Weight](from, to int, w W) Edge[W] {
	return Edge[W]{from: from, to: to, weight: w}
}

// From returns the tail vertex.
func (e Edge[W]) From() int { return e.from }

// To returns the head vertex.
func (e Edge[W]) To() int { return e.to }

// Weight returns the edge's weight.
func (e Edge[W]) Weight() W { return e.weight }

// Reverse returns the half-edge with From/To swapped.
func (e Edge[W]) Reverse() Edge[W] {
	return Edge[W]{from: e.to, to: e.from, weight: e.weight}
}

// Subdivide splits e into two half-edges meeting at middle: the first keeps
// e's weight, the second carries zero weight, matching the original
// edge-splitting reduction (see package splitgraph).
func (e Edge[W]) Subdivide(middle int) (Edge[W], Edge[W]) {
	var zero W

	return Edge[W]{from: e.from, to: middle, weight: e.weight},
		Edge[W]{from: middle, to: e.to, weight: zero}
}

// ShiftBy translates both endpoints by offset, used when stitching a
// secondary vertex range (e.g. the mirror half of a double cover) onto an
// existing index space.
func (e Edge[W]) ShiftBy(offset int) Edge[W] {
	return Edge[W]{from: e.from + offset, to: e.to + offset, weight: e.weight}
}

// Less orders edges lexicographically by (From, To, Weight), giving Edge[W]
// a total order usable as a sorted-slice key where Go has no ordered-set
// container. splitgraph's banned-edge membership test does not use it: it
// keys on the unordered endpoint pair alone.
func (e Edge[W]) Less(other Edge[W]) bool {
	if e.from != other.from {
		return e.from < other.from
	}
	if e.to != other.to {
		return e.to < other.to
	}

	return e.weight < other.weight
}

// String renders the edge compactly, omitting the weight when it equals one.
func (e Edge[W]) String() string {
	var one W
	one = W(1)
	if e.weight == one {
		return fmt.Sprintf("%d --> %d", e.from, e.to)
	}

	return fmt.Sprintf("%d -%v-> %d", e.from, e.weight, e.to)
}

// PlanarEdge is a half-edge additionally carrying the indices of the faces
// to its left and right in a clockwise planar embedding, assigned by
// package planar's face-enumeration pass.
type PlanarEdge[W weight.Weight] struct {
	from, to    int
	weight      W
	left, right int
}

// NewPlanarEdge constructs a planar half-edge with face labels left/right.
func NewPlanarEdge[W weight.Weight](from, to int, w W, left, right int) PlanarEdge[W] {
	return PlanarEdge[W]{from: from, to: to, weight: w, left: left, right: right}
}

// From returns the tail vertex.
func (e PlanarEdge[W]) From() int { return e.from }

// To returns the head vertex.
func (e PlanarEdge[W]) To() int { return e.to }

// Weight returns the edge's weight.
func (e PlanarEdge[W]) Weight() W { return e.weight }

// Left returns the face index to this half-edge's left.
func (e PlanarEdge[W]) Left() int { return e.left }

// Right returns the face index to this half-edge's right.
func (e PlanarEdge[W]) Right() int { return e.right }

// Reverse swaps From/To and, correspondingly, Left/Right.
func (e PlanarEdge[W]) Reverse() PlanarEdge[W] {
	return PlanarEdge[W]{from: e.to, to: e.from, weight: e.weight, left: e.right, right: e.left}
}

// Subdivide splits e into two half-edges meeting at middle, both inheriting
// e's face labels (the midpoint lies on the same two faces as the original
// edge).
func (e PlanarEdge[W]) Subdivide(middle int) (PlanarEdge[W], PlanarEdge[W]) {
	var zero W

	return PlanarEdge[W]{from: e.from, to: middle, weight: e.weight, left: e.left, right: e.right},
		PlanarEdge[W]{from: middle, to: e.to, weight: zero, left: e.left, right: e.right}
}

// ShiftBy translates From/To by offset; face labels are unaffected since
// they index a separate (dual) vertex space.
func (e PlanarEdge[W]) ShiftBy(offset int) PlanarEdge[W] {
	return PlanarEdge[W]{from: e.from + offset, to: e.to + offset, weight: e.weight, left: e.left, right: e.right}
}

// RotateRight returns the half-edge obtained by walking one step clockwise
// around the current left face: its From/To become the old Left/Right face
// indices, and its own Left/Right become the old To/From vertices. This is
// the step used to build the dual graph's adjacency from a planar embedding.
func (e PlanarEdge[W]) RotateRight() PlanarEdge[W] {
	return PlanarEdge[W]{from: e.left, to: e.right, weight: e.weight, left: e.to, right: e.from}
}

// String renders the edge with its weight inline.
func (e PlanarEdge[W]) String() string {
	return fmt.Sprintf("%d -%v-> %d", e.from, e.weight, e.to)
}

// DescribeEdge renders e using the embedded endpoint coordinates from points,
// as a diagnostic helper; the planarity check's error and trace output name
// vertex indices, not coordinates.
func (e PlanarEdge[W]) DescribeEdge(points []Point) string {
	a, b := points[e.from], points[e.to]

	return fmt.Sprintf("(%.1f,%.1f) <===> (%.1f,%.1f)", a.X, a.Y, b.X, b.Y)
}

// Point is a planar embedding coordinate. Algorithms needing vector
// arithmetic (orientation predicate, clockwise sort) convert Point to
// gonum.org/v1/gonum/spatial/r2.Vec; Point itself stays a plain value type so
// pgraph does not need to import gonum.
type Point struct {
	X, Y float64
}

// EdgeLike is the constraint every edge type usable by UndirectedGraph[W,E]
// must satisfy: the minimal surface Derigs' engine and the splitting
// reduction need. Edge[W] and PlanarEdge[W] both satisfy it.
type EdgeLike[W weight.Weight, E any] interface {
	From() int
	To() int
	Weight() W
	Reverse() E
	Subdivide(middle int) (E, E)
	ShiftBy(offset int) E
}

// UndirectedGraph is an adjacency-list graph over the dense vertex space
// [0,n): adj[u] holds every half-edge leaving u, including the mirror of
// edges added as v->u. It is generic over the edge payload E so the same
// structure serves both the plain reduction graphs (Edge[W]) and planar
// graphs before/after dual construction (PlanarEdge[W]).
type UndirectedGraph[W weight.Weight, E EdgeLike[W, E]] struct {
	muVert    sync.RWMutex // guards n (fixed after NewUndirectedGraph)
	muEdgeAdj sync.RWMutex // guards adj and m

	n   int
	m   int
	adj [][]E
}

// NewUndirectedGraph allocates an empty graph over n vertices.
func NewUndirectedGraph[W weight.Weight, E EdgeLike[W, E]](n int) *UndirectedGraph[W, E] {
	return &UndirectedGraph[W, E]{
		n:   n,
		adj: make([][]E, n),
	}
}
