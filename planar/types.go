package planar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// Sentinel errors for planar construction.
var (
	// ErrPointCount indicates len(points) does not equal the vertex count
	// implied by the edge list.
	ErrPointCount = errors.New("planar: point count does not match vertex count")

	// ErrVertexRange indicates an edge referenced a vertex outside [0,n).
	ErrVertexRange = errors.New("planar: vertex index out of range")

	// ErrNonPlanarEmbedding indicates the given straight-line embedding has
	// crossing edges (AssertPlanarity was enabled).
	ErrNonPlanarEmbedding = errors.New("planar: not a straight-line embedding")

	// ErrFaceEnumerationIncomplete indicates the clockwise face walk left at
	// least one half-edge without both a left and a right face. Build also
	// returns it, wrapped, when AssertPlanarity is set and the face count
	// violates Euler's formula; there is no separate face-count error.
	ErrFaceEnumerationIncomplete = errors.New("planar: face enumeration incomplete")
)

// FaceEnumerationIncompleteError carries the number of half-edges that never
// received both face labels, supplementing the bare sentinel above with a
// diagnostic detail the original implementation's panic message included.
type FaceEnumerationIncompleteError struct {
	MissingHalfEdges int
}

func (e *FaceEnumerationIncompleteError) Error() string {
	return fmt.Sprintf("%v: %d half-edge(s) missing a left or right face", ErrFaceEnumerationIncomplete, e.MissingHalfEdges)
}

func (e *FaceEnumerationIncompleteError) Unwrap() error { return ErrFaceEnumerationIncomplete }

// WeightedPair is one input edge: an unordered vertex pair plus weight.
type WeightedPair[W weight.Weight] struct {
	U, V   int
	Weight W
}

// CoalesceStrategy combines the weights of two input edges that share the
// same unordered endpoint pair, ported from the original SimpleGraphStrategy
// trait's four implementations.
type CoalesceStrategy[W weight.Weight] func(a, b W) W

// KeepFirst discards b, keeping whichever edge was added first.
func KeepFirst[W weight.Weight](a, b W) W { return a }

// KeepHighestWeight keeps the larger of the two weights.
func KeepHighestWeight[W weight.Weight](a, b W) W {
	if a > b {
		return a
	}

	return b
}

// KeepLowestWeight keeps the smaller of the two weights.
func KeepLowestWeight[W weight.Weight](a, b W) W {
	if a < b {
		return a
	}

	return b
}

// SumWeights adds the two weights, the default strategy and the only one
// suitable for network-diversion's edge-weight semantics.
func SumWeights[W weight.Weight](a, b W) W { return a + b }

// Options tunes Build's behavior.
type Options[W weight.Weight] struct {
	// Coalesce combines duplicate (u,v) input pairs. Default SumWeights.
	Coalesce CoalesceStrategy[W]

	// AssertPlanarity, if true, rejects an embedding with crossing edges
	// with ErrNonPlanarEmbedding instead of silently proceeding, and turns an
	// Euler's-formula violation from a warning into an error.
	AssertPlanarity bool

	// Verbose gates diagnostic fmt.Printf tracing of face enumeration and
	// planarity-check failures, mirroring the original's debug() calls.
	Verbose bool
}

// Option configures an Options value.
type Option[W weight.Weight] func(*Options[W])

// DefaultOptions returns SumWeights coalescing with planarity asserted and
// verbose tracing disabled.
func DefaultOptions[W weight.Weight]() Options[W] {
	return Options[W]{
		Coalesce:        SumWeights[W],
		AssertPlanarity: true,
	}
}

// WithCoalesceStrategy overrides the duplicate-edge combination strategy.
func WithCoalesceStrategy[W weight.Weight](s CoalesceStrategy[W]) Option[W] {
	return func(o *Options[W]) { o.Coalesce = s }
}

// WithAssertPlanarity toggles the straight-line crossing check.
func WithAssertPlanarity[W weight.Weight](assert bool) Option[W] {
	return func(o *Options[W]) { o.AssertPlanarity = assert }
}

// WithVerbose toggles debug tracing.
func WithVerbose[W weight.Weight](verbose bool) Option[W] {
	return func(o *Options[W]) { o.Verbose = verbose }
}

// BuildResult wraps a built Graph together with any non-fatal warnings
// (e.g. Euler's formula mismatch on a disconnected embedding, which the
// original implementation documents as something the builder warns about
// but does not reject).
type BuildResult[W weight.Weight] struct {
	Graph    *Graph[W]
	Warnings []string
}

// Graph is a planar embedding together with its face-adjacency dual.
type Graph[W weight.Weight] struct {
	points []pgraph.Point
	real   *pgraph.UndirectedGraph[W, pgraph.PlanarEdge[W]]
	dual   *pgraph.UndirectedGraph[W, pgraph.PlanarEdge[W]]
}

// Real returns the embedded graph (vertices = input points, faces as edge
// labels).
func (g *Graph[W]) Real() *pgraph.UndirectedGraph[W, pgraph.PlanarEdge[W]] { return g.real }

// Dual returns the face-adjacency graph (vertices = faces of Real).
func (g *Graph[W]) Dual() *pgraph.UndirectedGraph[W, pgraph.PlanarEdge[W]] { return g.dual }

// N returns the number of vertices in the real graph.
func (g *Graph[W]) N() int { return g.real.VertexCount() }

// M returns the number of edges in the real graph.
func (g *Graph[W]) M() int { return g.real.EdgeCount() }

// F returns the number of faces (vertices of the dual graph).
func (g *Graph[W]) F() int { return g.dual.VertexCount() }

// Points returns the embedding coordinates, indexed by real-graph vertex.
func (g *Graph[W]) Points() []pgraph.Point { return g.points }

// DescribeEdge renders a real-graph edge using its endpoint coordinates.
func (g *Graph[W]) DescribeEdge(e pgraph.PlanarEdge[W]) string {
	return e.DescribeEdge(g.points)
}
