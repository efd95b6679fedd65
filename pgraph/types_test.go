package pgraph_test

import (
	"testing"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdge_ReverseSubdivideShift(t *testing.T) {
	e := pgraph.NewEdge(2, 5, 7)

	r := e.Reverse()
	assert.Equal(t, 5, r.From())
	assert.Equal(t, 2, r.To())
	assert.Equal(t, 7, r.Weight())

	a, b := e.Subdivide(10)
	assert.Equal(t, 2, a.From())
	assert.Equal(t, 10, a.To())
	assert.Equal(t, 7, a.Weight())
	assert.Equal(t, 10, b.From())
	assert.Equal(t, 5, b.To())
	assert.Equal(t, 0, b.Weight())

	s := e.ShiftBy(100)
	assert.Equal(t, 102, s.From())
	assert.Equal(t, 105, s.To())
}

func TestEdge_Less(t *testing.T) {
	a := pgraph.NewEdge(1, 2, 3)
	b := pgraph.NewEdge(1, 3, 1)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestEdge_String(t *testing.T) {
	assert.Equal(t, "0 --> 1", pgraph.NewEdge(0, 1, 1).String())
	assert.Equal(t, "0 -3-> 1", pgraph.NewEdge(0, 1, 3).String())
}

func TestPlanarEdge_RotateRight(t *testing.T) {
	e := pgraph.NewPlanarEdge(0, 1, 1, 10, 11)
	r := e.RotateRight()
	assert.Equal(t, 10, r.From())
	assert.Equal(t, 11, r.To())
	assert.Equal(t, 1, r.Left())
	assert.Equal(t, 0, r.Right())
}

func TestUndirectedGraph_AddEdgeMirrors(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](4)
	g.AddEdge(pgraph.NewEdge(0, 1, 5))

	require.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.IsAdjacent(0, 1))
	assert.True(t, g.IsAdjacent(1, 0))
	assert.Len(t, g.N(0), 1)
	assert.Len(t, g.N(1), 1)
}

func TestUndirectedGraph_DeleteEdges(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](3)
	e := pgraph.NewEdge(0, 1, 1)
	g.AddEdge(e)
	g.AddEdge(pgraph.NewEdge(1, 2, 1))

	g.DeleteEdges([]pgraph.Edge[int]{e})

	assert.False(t, g.IsAdjacent(0, 1))
	assert.True(t, g.IsAdjacent(1, 2))
}

func TestUndirectedGraph_Clone(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](2)
	g.AddEdge(pgraph.NewEdge(0, 1, 1))

	clone := g.Clone()
	clone.AddEdge(pgraph.NewEdge(0, 1, 1))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, clone.EdgeCount())
}
