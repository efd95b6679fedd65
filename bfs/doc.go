// Package bfs provides breadth-first search over a pgraph.UndirectedGraph,
// returning unweighted visit order, depth, and parent links, plus the
// predecessor edge needed to recover an s-t path as an edge sequence — which
// package diversion's primal reachability check (Reachable, used by Divert)
// needs, rather than just a vertex sequence.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start
//     vertex.
//   - Returns a Result containing Order (visit sequence), Depth (map from
//     vertex to distance), and Parent (map from vertex to its predecessor).
//   - Supports functional hooks at three stages: OnEnqueue, OnDequeue,
//     OnVisit (may abort with an error).
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor,
//     and excluding one specific edge via WithForbiddenEdge.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Complexity (V = |Vertices|, E = |Edges|): O(V + E) time, O(V) memory.
package bfs
