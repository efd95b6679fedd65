// Package ioformat reads and writes the plain-text graph formats used
// throughout this module's fixtures and CLI tools.
//
// Two shapes are supported:
//
//   - A plain weighted undirected graph: the first significant line holds
//     the vertex count n, and every following significant line is one edge
//     "u v [w]" (w defaults to 1 when absent or unparseable). Lines that are
//     blank or start with '%' are comments and are skipped.
//
//   - A planar embedding: the first significant line holds "n m", followed
//     by exactly n "id x y" vertex-coordinate lines and exactly m edge lines
//     in the same "u v [w]" shape as above. Parsing defers to planar.Build,
//     so AssertPlanarity and the coalescing strategy for duplicate edges are
//     configured the same way a caller would configure Build directly.
//
// Both parsers are paired with a writer producing the same shape, so that
// parse(write(g)) reconstructs a graph equivalent to g up to the writer's
// deterministic edge and vertex ordering. This mirrors the original
// implementation's from_str/Display round trip.
package ioformat
