// Package pgraph defines the generic half-edge types and the adjacency-list
// undirected graph shared by every algorithm in this module.
//
// Edge[W] is the plain weighted half-edge (From, To, Weight); PlanarEdge[W]
// additionally carries Left/Right face labels assigned once a graph has been
// embedded (see package planar). UndirectedGraph[W,E] is generic over both:
// it stores, for each vertex in [0,n), the half-edges leaving it, and mirrors
// every inserted edge's reverse so traversal never special-cases direction.
//
// Vertices are dense integers in [0,n) rather than strings, unlike this
// package's teacher: Derigs' algorithm indexes distance/predecessor/basis
// arrays directly by vertex number, and a planar embedding's dual graph is
// built from face indices that are naturally dense integers too.
//
// muVert/muEdgeAdj mirror the teacher's dual-mutex discipline: vertex count
// is fixed at construction (muVert only ever guards the immutable n), while
// muEdgeAdj protects the adjacency lists during AddEdge/DeleteEdges/
// SetNeighbors so a graph under construction can be safely shared across
// goroutines. Once built, per-query algorithms (derigs, diversion) read
// concurrently: every read method takes only muEdgeAdj's read lock, and
// AddEdge, DeleteEdges and SetNeighbors are the only mutators.
package pgraph
