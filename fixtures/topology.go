package fixtures

import (
	"fmt"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// Complete builds the complete graph K_n with every edge carrying weight
// w. K_n is planar only for n <= 4, so unlike this package's other
// fixtures it returns a bare pgraph.UndirectedGraph rather than an
// embedding: it exists for exercising derigs and
// diversion.ShortestBottleneckPath, which operate on any
// pgraph.UndirectedGraph, not only planar ones.
func Complete[W weight.Weight](n int, w W) (*pgraph.UndirectedGraph[W, pgraph.Edge[W]], error) {
	if n < 2 {
		return nil, fmt.Errorf("fixtures: Complete(n=%d) < min=2: %w", n, ErrTooFewVertices)
	}

	g := pgraph.NewUndirectedGraph[W, pgraph.Edge[W]](n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(pgraph.NewEdge(u, v, w))
		}
	}

	return g, nil
}
