// Package splitgraph implements the edge-subdivision reduction used by both
// the bottleneck-path and network-diversion problems: given a graph and a
// set of banned edges, it returns a graph where every non-banned edge has
// been split into two half-edges (the first keeping the original weight,
// the second weighing zero) meeting at a new midpoint vertex. Any path using
// an odd number of total edges in the split graph must therefore cross a
// banned edge an odd number of times, reducing "pass through a banned edge"
// to "use an odd number of edges" for package derigs to solve directly.
//
// Grounded on the original implementation's split_edges.
package splitgraph
