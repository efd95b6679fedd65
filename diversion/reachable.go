package diversion

import (
	"github.com/katalvlaran/planarcut/bfs"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// Reachable runs an unweighted search from s to t over g with the
// undirected edge {forbidFrom,forbidTo} removed, returning the edge path
// it found. ok is false when t is unreachable without crossing that edge.
//
// This is Divert's step 1: deciding whether any s-t path bypasses the
// diversion edge at all.
func Reachable[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], s, t, forbidFrom, forbidTo int) ([]E, bool, error) {
	res, err := bfs.BFS[W](g, s, bfs.WithForbiddenEdge[W, E](forbidFrom, forbidTo))
	if err != nil {
		return nil, false, err
	}

	path, ok := res.EdgePathTo(t)

	return path, ok, nil
}
