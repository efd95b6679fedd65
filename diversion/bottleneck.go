package diversion

import (
	"github.com/katalvlaran/planarcut/derigs"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/splitgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// ShortestBottleneckPath finds the minimum-weight s-t walk in g that
// crosses the bottleFrom-bottleTo edge, by subdividing every other edge and
// running ShortestOddPath: any walk through the subdivided graph with an
// odd number of edges must cross an odd number of un-subdivided edges,
// which here means exactly one, namely the bottleneck.
//
// Grounded on the original implementation's shortest_bottleneck_path.
func ShortestBottleneckPath[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], s, t, bottleFrom, bottleTo int) derigs.PathResult[W, E] {
	var bottleneck []E
	for _, e := range g.N(bottleFrom) {
		if e.To() == bottleTo {
			bottleneck = append(bottleneck, e)
		}
	}

	split, unsplit := splitgraph.Split(g, bottleneck)

	res := derigs.ShortestOddPath[W](split, s, t)
	if !res.IsPossible() {
		return derigs.Impossible[W, E]()
	}

	cost, _ := res.Cost()
	splitPath, _ := res.Path()

	mapped := make([]E, 0, len(splitPath))
	for _, e := range splitPath {
		if orig, ok := unsplit(e); ok {
			mapped = append(mapped, orig)
		}
	}

	return derigs.Possible(cost, mapped)
}
