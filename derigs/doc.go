// Package derigs finds the shortest s-t walk using an odd number of edges in
// an undirected graph, via Derigs' algorithm: a Dijkstra-like search over a
// mirrored double cover of the graph, with on-the-fly blossom contraction
// whenever the search meets itself on an "odd" cycle.
//
// The double cover duplicates every vertex except s and t: reaching the
// mirror of u means "reached u having used an even number of edges so far".
// t is never mirrored and no mirrored vertex has an edge into it, so a
// search that reaches t itself has found an odd-length s-t walk. Where
// the search would otherwise form an even cycle (reaching an already
// completed vertex through a different base), the cycle is contracted into
// a single blossom via a union-find Basis, exactly as in general
// maximum-matching algorithms.
//
// Grounded on the original implementation's odd_path.rs, todo.rs and
// path_result.rs.
package derigs
