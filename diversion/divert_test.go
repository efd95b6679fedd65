package diversion_test

import (
	"testing"

	"github.com/katalvlaran/planarcut/diversion"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, points []pgraph.Point, edges []planar.WeightedPair[int]) *planar.Graph[int] {
	t.Helper()
	res, err := planar.Build[int](points, edges)
	require.NoError(t, err)

	return res.Graph
}

// TestDivert_K2_NoAvoidancePath covers spec scenario 1: K2 with its only
// edge as the diversion edge. No s-t path avoids it, so no diversion is
// needed.
func TestDivert_K2_NoAvoidancePath(t *testing.T) {
	points := []pgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	edges := []planar.WeightedPair[int]{{U: 0, V: 1, Weight: 1}}
	g := mustBuild(t, points, edges)

	res, err := diversion.Divert(g, 0, 1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, diversion.NoCutNeeded, res.Status())
}

func square(t *testing.T) *planar.Graph[int] {
	t.Helper()
	points := []pgraph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	edges := []planar.WeightedPair[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 0, Weight: 1},
	}

	return mustBuild(t, points, edges)
}

// TestDivert_Square_DirectPathAvoidsDiversion covers spec scenario 2: the
// only 2-3 path avoiding (0,1) is the direct edge, so no diversion is
// needed.
func TestDivert_Square_DirectPathAvoidsDiversion(t *testing.T) {
	g := square(t)

	res, err := diversion.Divert(g, 2, 3, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, diversion.NoCutNeeded, res.Status())
}

// TestDivert_Square_MinimalNonTrivialCut covers spec scenario 3: forcing
// every 0-2 path through (0,1) costs 1, by cutting either (0,3) or (2,3).
func TestDivert_Square_MinimalNonTrivialCut(t *testing.T) {
	g := square(t)

	res, err := diversion.Divert(g, 0, 2, 0, 1)
	require.NoError(t, err)
	require.Equal(t, diversion.Cut, res.Status())

	cost, _ := res.Cost()
	assert.Equal(t, 1, cost)

	edges, _ := res.Edges()
	require.Len(t, edges, 1)

	e := edges[0]
	isZeroThree := (e.From() == 0 && e.To() == 3) || (e.From() == 3 && e.To() == 0)
	isTwoThree := (e.From() == 2 && e.To() == 3) || (e.From() == 3 && e.To() == 2)
	assert.True(t, isZeroThree || isTwoThree, "cut edge %v-%v must be (0,3) or (2,3)", e.From(), e.To())
}

func grid3x3(t *testing.T) (*planar.Graph[int], func(i, j int) int) {
	t.Helper()
	id := func(i, j int) int { return i*3 + j }
	points := make([]pgraph.Point, 9)
	var edges []planar.WeightedPair[int]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			points[id(i, j)] = pgraph.Point{X: float64(j), Y: float64(i)}
			if j+1 < 3 {
				edges = append(edges, planar.WeightedPair[int]{U: id(i, j), V: id(i, j+1), Weight: 1})
			}
			if i+1 < 3 {
				edges = append(edges, planar.WeightedPair[int]{U: id(i, j), V: id(i+1, j), Weight: 1})
			}
		}
	}

	return mustBuild(t, points, edges), id
}

// TestDivert_Grid_CutSeversEveryAvoidingPath covers spec scenario 6: on a
// 3x3 grid from corner to corner, removing the returned cut must eliminate
// every s-t path that does not cross the diversion edge.
func TestDivert_Grid_CutSeversEveryAvoidingPath(t *testing.T) {
	g, id := grid3x3(t)
	s, tgt := id(0, 0), id(2, 2)
	du, dv := id(1, 0), id(1, 1) // a center horizontal edge

	res, err := diversion.Divert(g, s, tgt, du, dv)
	require.NoError(t, err)
	require.Equal(t, diversion.Cut, res.Status())

	cutEdges, _ := res.Edges()
	cost, _ := res.Cost()
	assert.Equal(t, len(cutEdges), cost, "unit weights: cost must equal edge count")

	pruned := pgraph.NewUndirectedGraph[int, pgraph.PlanarEdge[int]](g.N())
	cut := make(map[[2]int]bool, len(cutEdges))
	for _, e := range cutEdges {
		cut[[2]int{e.From(), e.To()}] = true
		cut[[2]int{e.To(), e.From()}] = true
	}
	for _, u := range g.Real().Vertices() {
		for _, e := range g.Real().N(u) {
			if e.From() >= e.To() || cut[[2]int{e.From(), e.To()}] {
				continue
			}
			pruned.AddEdge(e)
		}
	}

	_, stillReachable, err := diversion.Reachable[int](pruned, s, tgt, du, dv)
	require.NoError(t, err)
	assert.False(t, stillReachable, "every s-t path avoiding the diversion edge must be severed by the cut")
}
