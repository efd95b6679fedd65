// Package fixtures builds small, deterministic graphs for tests and demos:
// cycles, paths, grids, wheels, and stars as straight-line planar
// embeddings ready for planar.Build, plus a plain (non-embedded) complete
// graph for exercising derigs and diversion.ShortestBottleneckPath directly.
//
// Adapted from the teacher's builder/impl_*.go constructors and
// gridgraph's row-major coordinate convention, generalized from
// core.Graph's string vertex IDs to pgraph's dense int vertex space and
// from a Constructor-closure API to direct (points, edges) return values,
// since planar.Build takes that shape rather than an incrementally
// populated graph.
package fixtures
