package derigs

import (
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// ShortestOddPath finds the minimum-weight s-t walk in g that uses an odd
// number of edges, via Derigs' algorithm. Returns Impossible if s == t or no
// such walk exists.
//
// Complexity: O((n+m) log n + n*alpha(n)) amortized, where n,m are g's
// vertex/edge counts: the O(n) double cover roughly doubles the search
// space of a Dijkstra-style scan, and each blossom contraction does O(path
// length) union-find work.
func ShortestOddPath[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], s, t int, opts ...Option) PathResult[W, E] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return newEngine[W](g, s, t, o).solve()
}
