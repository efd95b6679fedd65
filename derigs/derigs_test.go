package derigs_test

import (
	"testing"

	"github.com/katalvlaran/planarcut/derigs"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycle(n int, w int) *pgraph.UndirectedGraph[int, pgraph.Edge[int]] {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](n)
	for i := 0; i < n; i++ {
		g.AddEdge(pgraph.NewEdge(i, (i+1)%n, w))
	}

	return g
}

func TestShortestOddPath_SameVertex_Impossible(t *testing.T) {
	g := cycle(4, 1)
	res := derigs.ShortestOddPath[int](g, 0, 0)
	assert.False(t, res.IsPossible())
}

func TestShortestOddPath_SingleEdge(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](2)
	g.AddEdge(pgraph.NewEdge(0, 1, 5))

	res := derigs.ShortestOddPath[int](g, 0, 1)
	require.True(t, res.IsPossible())
	cost, _ := res.Cost()
	assert.Equal(t, 5, cost)
	path, _ := res.Path()
	require.Len(t, path, 1)
}

func TestShortestOddPath_FourCycle_OppositeCorners_Impossible(t *testing.T) {
	g := cycle(4, 1)
	res := derigs.ShortestOddPath[int](g, 0, 2)
	assert.False(t, res.IsPossible())
}

func TestShortestOddPath_FourCycle_AdjacentCorners_TakesDirectEdge(t *testing.T) {
	g := cycle(4, 1)
	res := derigs.ShortestOddPath[int](g, 0, 1)
	require.True(t, res.IsPossible())
	cost, _ := res.Cost()
	assert.Equal(t, 1, cost)
	path, _ := res.Path()
	assert.Len(t, path, 1)
}

func TestShortestOddPath_FiveCycle_GoesAroundTheLongWay(t *testing.T) {
	g := cycle(5, 1)
	res := derigs.ShortestOddPath[int](g, 0, 2)
	require.True(t, res.IsPossible())
	cost, _ := res.Cost()
	assert.Equal(t, 3, cost)
	path, _ := res.Path()
	require.Len(t, path, 3)
	assert.Equal(t, 0, path[0].From())
	assert.Equal(t, 2, path[len(path)-1].To())
}

func TestShortestOddPath_Disconnected_Impossible(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](4)
	g.AddEdge(pgraph.NewEdge(0, 1, 1))
	g.AddEdge(pgraph.NewEdge(2, 3, 1))

	res := derigs.ShortestOddPath[int](g, 0, 3)
	assert.False(t, res.IsPossible())
}
