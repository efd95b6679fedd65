// Package diversion implements the two reductions that sit on top of
// package derigs: the shortest-bottleneck-path problem (a path forced
// through one named edge) and network diversion proper (a minimum-weight
// edge cut forcing every surviving s-t path through one named edge of a
// planar embedding).
//
// Both reductions share the same shape: subdivide every edge except a kept
// set (package splitgraph) — the bottleneck edge for the bottleneck path,
// the dual edges crossing an avoiding s-t path for network diversion —
// search for a shortest odd-length path
// in the subdivided graph (package derigs), then map the result back
// through the subdivision's inverse. Network diversion additionally moves
// the search onto the planar dual via PlanarEdge.RotateRight, since a
// primal edge cut corresponds to an odd-length path between the two dual
// faces bordering the diversion edge.
//
// Grounded on the original implementation's bottleneck_path.rs and
// network_diversion.rs.
package diversion
