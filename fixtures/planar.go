package fixtures

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/planar"
	"github.com/katalvlaran/planarcut/weight"
)

const (
	minCycleNodes = 3
	minWheelNodes = 4
	minGridDim    = 1
)

// Cycle lays out n ≥ 3 vertices evenly around a unit circle and connects
// each to its successor, closing the ring. Every edge carries weight w.
func Cycle[W weight.Weight](n int, w W) ([]pgraph.Point, []planar.WeightedPair[W], error) {
	if n < minCycleNodes {
		return nil, nil, fmt.Errorf("fixtures: Cycle(n=%d) < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	points := circlePoints(n)
	edges := make([]planar.WeightedPair[W], n)
	for i := 0; i < n; i++ {
		edges[i] = planar.WeightedPair[W]{U: i, V: (i + 1) % n, Weight: w}
	}

	return points, edges, nil
}

// Path lays out n ≥ 2 vertices on a horizontal line and connects each to
// its successor. Every edge carries weight w.
func Path[W weight.Weight](n int, w W) ([]pgraph.Point, []planar.WeightedPair[W], error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("fixtures: Path(n=%d) < min=2: %w", n, ErrTooFewVertices)
	}

	points := make([]pgraph.Point, n)
	edges := make([]planar.WeightedPair[W], n-1)
	for i := 0; i < n; i++ {
		points[i] = pgraph.Point{X: float64(i), Y: 0}
		if i+1 < n {
			edges[i] = planar.WeightedPair[W]{U: i, V: i + 1, Weight: w}
		}
	}

	return points, edges, nil
}

// Grid lays out a rows x cols orthogonal grid, row-major (vertex i*cols+j
// sits at column j, row i), connecting each cell to its right and bottom
// neighbors. Every edge carries weight w.
func Grid[W weight.Weight](rows, cols int, w W) ([]pgraph.Point, []planar.WeightedPair[W], error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("fixtures: Grid(rows=%d,cols=%d) below min=%d: %w", rows, cols, minGridDim, ErrTooFewVertices)
	}

	id := func(r, c int) int { return r*cols + c }
	points := make([]pgraph.Point, rows*cols)
	var edges []planar.WeightedPair[W]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points[id(r, c)] = pgraph.Point{X: float64(c), Y: float64(r)}
			if c+1 < cols {
				edges = append(edges, planar.WeightedPair[W]{U: id(r, c), V: id(r, c+1), Weight: w})
			}
			if r+1 < rows {
				edges = append(edges, planar.WeightedPair[W]{U: id(r, c), V: id(r+1, c), Weight: w})
			}
		}
	}

	return points, edges, nil
}

// Wheel lays out an (n-1)-vertex outer cycle plus a center hub (vertex
// n-1) with spokes to every rim vertex, n >= 4. Every edge carries weight
// w, rim and spokes alike.
func Wheel[W weight.Weight](n int, w W) ([]pgraph.Point, []planar.WeightedPair[W], error) {
	if n < minWheelNodes {
		return nil, nil, fmt.Errorf("fixtures: Wheel(n=%d) < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
	}

	rim := n - 1
	points := append(circlePoints(rim), pgraph.Point{X: 0, Y: 0})
	hub := rim

	edges := make([]planar.WeightedPair[W], 0, 2*rim)
	for i := 0; i < rim; i++ {
		edges = append(edges, planar.WeightedPair[W]{U: i, V: (i + 1) % rim, Weight: w})
	}
	for i := 0; i < rim; i++ {
		edges = append(edges, planar.WeightedPair[W]{U: hub, V: i, Weight: w})
	}

	return points, edges, nil
}

// Star lays out n-1 leaves around a center hub (vertex n-1) with no rim
// edges, n >= 2. This is Wheel's ring-free special case, kept separate
// since a bare star is the more common small fixture (e.g. for exercising
// a single high-degree vertex).
func Star[W weight.Weight](n int, w W) ([]pgraph.Point, []planar.WeightedPair[W], error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("fixtures: Star(n=%d) < min=2: %w", n, ErrTooFewVertices)
	}

	leaves := n - 1
	points := append(circlePoints(leaves), pgraph.Point{X: 0, Y: 0})
	hub := leaves

	edges := make([]planar.WeightedPair[W], leaves)
	for i := 0; i < leaves; i++ {
		edges[i] = planar.WeightedPair[W]{U: hub, V: i, Weight: w}
	}

	return points, edges, nil
}

// circlePoints places n points evenly around the unit circle, starting at
// angle 0 and proceeding counter-clockwise (clockwise sort during
// planar.Build normalizes orientation regardless).
func circlePoints(n int) []pgraph.Point {
	points := make([]pgraph.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = pgraph.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return points
}
