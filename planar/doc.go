// Package planar builds a PlanarGraph from a straight-line embedding
// (vertex coordinates plus weighted pairs) and derives its face-adjacency
// dual graph.
//
// Construction follows the original implementation's PrePlanarGraph
// pipeline: coalesce duplicate (u,v) pairs with a CoalesceStrategy, sort
// each vertex's incident edges clockwise around it, walk face boundaries to
// assign every half-edge a left/right face label, and from that embed the
// real graph and construct the dual by rotating each half-edge one step
// clockwise around its left face. Euler's formula (n - m + f = 2) is the
// structural sanity check on the result.
//
// Straight-line crossing detection (CheckStraightLineEmbedding) and the
// clockwise angular sort both use gonum.org/v1/gonum/spatial/r2.Vec for
// vector arithmetic in place of the original's hand-rolled Point type.
package planar
