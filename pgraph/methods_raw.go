// File: methods_raw.go
// Role: low-level adjacency-bucket access for callers constructing a graph
// whose buckets are not simple mirrored pairs (e.g. derigs' mirror-graph
// double cover, whose mirrored-vertex buckets are a filtered, shifted copy
// of the original rather than a consequence of AddEdge's symmetric insert).

package pgraph

// SetNeighbors overwrites u's adjacency bucket directly, bypassing AddEdge's
// mirrored insert. It does not adjust EdgeCount, since a raw-assigned bucket
// is not necessarily half of a symmetric pair; callers using this escape
// hatch must not rely on EdgeCount afterward. Complexity: O(1).
func (g *UndirectedGraph[W, E]) SetNeighbors(u int, edges []E) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.adj[u] = edges
}
