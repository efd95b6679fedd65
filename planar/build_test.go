package planar_test

import (
	"testing"

	"github.com/katalvlaran/planarcut/planar"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squarePoints() []pgraph.Point {
	return []pgraph.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

func TestBuild_SquareCycle_TwoFaces(t *testing.T) {
	points := squarePoints()
	edges := []planar.WeightedPair[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 0, Weight: 1},
	}

	res, err := planar.Build(points, edges)
	require.NoError(t, err)

	g := res.Graph
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 4, g.M())
	assert.Equal(t, 2, g.F())

	assert.True(t, g.Dual().IsAdjacent(0, 1))
	assert.Equal(t, 4, g.Dual().EdgeCount())
}

func TestBuild_VertexOutOfRange(t *testing.T) {
	points := squarePoints()
	edges := []planar.WeightedPair[int]{{U: 0, V: 9, Weight: 1}}

	_, err := planar.Build(points, edges)
	assert.ErrorIs(t, err, planar.ErrVertexRange)
}

func TestBuild_CoalescesParallelPairs(t *testing.T) {
	points := squarePoints()
	edges := []planar.WeightedPair[int]{
		{U: 0, V: 1, Weight: 3},
		{U: 0, V: 1, Weight: 4}, // duplicate pair, default SumWeights
		{U: 1, V: 2, Weight: 1},
		{U: 2, V: 3, Weight: 1},
		{U: 3, V: 0, Weight: 1},
	}

	res, err := planar.Build(points, edges)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Graph.M())

	found := false
	for _, e := range res.Graph.Real().N(0) {
		if e.To() == 1 {
			assert.Equal(t, 7, e.Weight())
			found = true
		}
	}
	assert.True(t, found)
}

func TestCheckStraightLineEmbedding_DetectsCrossing(t *testing.T) {
	points := []pgraph.Point{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 1, Y: 0},
	}
	edges := []planar.WeightedPair[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	}

	err := planar.CheckStraightLineEmbedding(points, edges)
	assert.ErrorIs(t, err, planar.ErrNonPlanarEmbedding)
}

func TestCheckStraightLineEmbedding_NoCrossing(t *testing.T) {
	points := squarePoints()
	edges := []planar.WeightedPair[int]{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 1},
	}

	assert.NoError(t, planar.CheckStraightLineEmbedding(points, edges))
}
