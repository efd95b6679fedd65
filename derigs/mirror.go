package derigs

import (
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// mirrorGraph builds the double cover graph used by Derigs' search: every
// vertex except s and t gets a mirror at u+origN. A mirrored vertex's
// adjacency is the original's, shifted into the mirror range and stripped of
// any edge back to s or t (since s and t are never mirrored). Grounded on
// the original implementation's create_mirror_graph.
func mirrorGraph[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], s, t int) *pgraph.UndirectedGraph[W, E] {
	origN := g.VertexCount()
	mirror := pgraph.NewUndirectedGraph[W, E](origN * 2)

	for _, u := range g.Vertices() {
		neighbors := g.N(u)
		mirror.SetNeighbors(u, append([]E(nil), neighbors...))

		if u == s || u == t {
			continue
		}

		shifted := make([]E, 0, len(neighbors))
		for _, e := range neighbors {
			if e.To() != s && e.To() != t {
				shifted = append(shifted, e.ShiftBy(origN))
			}
		}
		mirror.SetNeighbors(u+origN, shifted)
	}

	return mirror
}
