package planar

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
	"gonum.org/v1/gonum/spatial/r2"
)

const noFace = -1

// prePlanarEdge is the scratch half-edge used while building a Graph: left
// and right are noFace until determineFaces assigns them. It mirrors the
// original PrePlanarEdge, specialized away from that implementation's sealed
// Option<usize>/usize trait trick since Go has no direct analogue; the two
// states (pre- and post-planarization) are just two fields of one struct
// here, selected by whether they still equal noFace.
type prePlanarEdge[W weight.Weight] struct {
	from, to    int
	weight      W
	left, right int
}

func (e prePlanarEdge[W]) reverse() prePlanarEdge[W] {
	return prePlanarEdge[W]{from: e.to, to: e.from, weight: e.weight, left: e.right, right: e.left}
}

func (e prePlanarEdge[W]) planarize() pgraph.PlanarEdge[W] {
	return pgraph.NewPlanarEdge(e.from, e.to, e.weight, e.left, e.right)
}

// Build embeds points/edges into a straight-line planar graph and derives
// its dual. Complexity: O((n+m) log m) dominated by the per-vertex clockwise
// sort and, when AssertPlanarity is set, O(m^2) for the pairwise crossing
// check.
func Build[W weight.Weight](points []pgraph.Point, edges []WeightedPair[W], opts ...Option[W]) (BuildResult[W], error) {
	o := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(points)
	adj := make([][]prePlanarEdge[W], n)
	for _, pair := range edges {
		if pair.U < 0 || pair.U >= n || pair.V < 0 || pair.V >= n {
			return BuildResult[W]{}, fmt.Errorf("%w: edge (%d,%d), n=%d", ErrVertexRange, pair.U, pair.V, n)
		}
		if pair.Weight < 0 {
			return BuildResult[W]{}, fmt.Errorf("%w: edge (%d,%d) weight %v", pgraph.ErrNegativeWeight, pair.U, pair.V, pair.Weight)
		}
		addPreEdge(adj, pair.U, pair.V, pair.Weight, o.Coalesce)
	}

	var warnings []string

	if o.AssertPlanarity {
		if err := checkCrossings(points, adj, o.Verbose); err != nil {
			return BuildResult[W]{}, err
		}
	}

	sortClockwise(adj, points)

	f, err := determineFaces(adj, o.Verbose, &warnings)
	if err != nil {
		return BuildResult[W]{}, err
	}

	m := countEdges(adj)
	if m > n+f || n+f-m != 2 {
		msg := fmt.Sprintf("Euler's formula violated: n=%d m=%d f=%d (expected n+f-m=2)", n, m, f)
		if o.Verbose {
			fmt.Println("planar:", msg)
		}
		warnings = append(warnings, msg)
		if o.AssertPlanarity {
			return BuildResult[W]{}, fmt.Errorf("%w: %s", ErrFaceEnumerationIncomplete, msg)
		}
	}

	real := pgraph.NewUndirectedGraph[W, pgraph.PlanarEdge[W]](n)
	dual := pgraph.NewUndirectedGraph[W, pgraph.PlanarEdge[W]](f)
	for _, bucket := range adj {
		for _, e := range bucket {
			if e.from >= e.to {
				continue
			}
			p := e.planarize()
			real.AddEdge(p)
			dual.AddEdge(p.RotateRight())
		}
	}

	ptsCopy := append([]pgraph.Point(nil), points...)

	return BuildResult[W]{
		Graph:    &Graph[W]{points: ptsCopy, real: real, dual: dual},
		Warnings: warnings,
	}, nil
}

// addPreEdge inserts or coalesces pair (u,v,w) into adj, always storing both
// directions so the clockwise sort and face walk can treat adj purely as an
// adjacency list. Mirrors PrePlanarGraph::add_edge's smaller-bucket-first
// search heuristic.
func addPreEdge[W weight.Weight](adj [][]prePlanarEdge[W], u, v int, w W, combine CoalesceStrategy[W]) {
	from, to := u, v
	if len(adj[u]) > len(adj[v]) {
		from, to = v, u
	}
	e := prePlanarEdge[W]{from: from, to: to, weight: w, left: noFace, right: noFace}

	for i := range adj[from] {
		if adj[from][i].to == to {
			adj[from][i].weight = combine(e.weight, adj[from][i].weight)
			for j := range adj[to] {
				if adj[to][j].to == from {
					adj[to][j].weight = combine(e.weight, adj[to][j].weight)

					return
				}
			}
			panic("planar: found a uni-directional edge while coalescing")
		}
	}

	adj[from] = append(adj[from], e)
	adj[to] = append(adj[to], e.reverse())
}

func countEdges[W weight.Weight](adj [][]prePlanarEdge[W]) int {
	total := 0
	for _, bucket := range adj {
		total += len(bucket)
	}

	return total / 2
}

// sortClockwise orders each vertex's incident half-edges by the clockwise
// angle of (points[e.to] - points[u]), matching compare_edges_clockwise.
func sortClockwise[W weight.Weight](adj [][]prePlanarEdge[W], points []pgraph.Point) {
	for u := range adj {
		center := toVec(points[u])
		sort.SliceStable(adj[u], func(i, j int) bool {
			ai := angle(toVec(points[adj[u][i].to]), center)
			aj := angle(toVec(points[adj[u][j].to]), center)

			return ai < aj
		})
	}
}

func angle(p, center r2.Vec) float64 {
	v := r2.Sub(p, center)

	return math.Atan2(v.Y, v.X)
}

func toVec(p pgraph.Point) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

// determineFaces walks every face boundary clockwise, labeling each
// half-edge's left and right face, exactly as the original's
// determine_faces. It mutates adj in place.
func determineFaces[W weight.Weight](adj [][]prePlanarEdge[W], verbose bool, warnings *[]string) (int, error) {
	n := len(adj)
	snapshot := make([][]prePlanarEdge[W], n)
	for i, bucket := range adj {
		snapshot[i] = append([]prePlanarEdge[W](nil), bucket...)
	}

	currentFace := 0
	for start := 0; start < n; start++ {
		for lineID := 0; lineID < len(adj[start]); lineID++ {
			if adj[start][lineID].left != noFace {
				continue
			}

			currLineID := lineID
			currLine := snapshot[start][currLineID]
			for {
				adj[currLine.from][currLineID].left = currentFace

				id := -1
				for k, cand := range snapshot[currLine.to] {
					if cand.to == currLine.from {
						id = k

						break
					}
				}
				if id < 0 {
					panic("planar: could not find the reverse half-edge during face enumeration")
				}
				adj[currLine.to][id].right = currentFace

				currLineID = (id + 1) % len(adj[currLine.to])
				currLine = snapshot[currLine.to][currLineID]

				if currLine.from == start {
					break
				}
			}
			currentFace++
		}
	}

	missing := 0
	for u := range adj {
		for _, e := range adj[u] {
			if e.left == noFace || e.right == noFace {
				missing++
			}
		}
	}
	if missing > 0 {
		if verbose {
			fmt.Printf("planar: %d half-edge(s) missing a face label\n", missing)
		}

		return currentFace, &FaceEnumerationIncompleteError{MissingHalfEdges: missing}
	}

	return currentFace, nil
}

// checkCrossings rejects a non-straight-line embedding by the classic
// 4-orientation segment-intersection predicate, mirroring assert_planarity.
func checkCrossings[W weight.Weight](points []pgraph.Point, adj [][]prePlanarEdge[W], verbose bool) error {
	var edges []prePlanarEdge[W]
	for _, bucket := range adj {
		edges = append(edges, bucket...)
	}

	errors := 0
	for i := 0; i < len(edges); i++ {
		ab := edges[i]
		if ab.from > ab.to {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			cd := edges[j]
			if cd.from >= cd.to {
				continue
			}
			if ab.from == cd.from && ab.to == cd.to {
				continue
			}
			if segmentsIntersect(points, ab.from, ab.to, cd.from, cd.to) {
				if errors == 0 && verbose {
					fmt.Println("planar: not a straight-line embedding, crossing edges include:")
				}
				if errors < 10 && verbose {
					fmt.Printf("  (%d,%d) x (%d,%d)\n", ab.from, ab.to, cd.from, cd.to)
				}
				errors++
			}
		}
	}
	if errors > 0 {
		return ErrNonPlanarEmbedding
	}

	return nil
}

type orientation int

const (
	colinear orientation = iota
	clockwise
	counterclockwise
)

func segmentsIntersect(points []pgraph.Point, a, b, c, d int) bool {
	pa, pb, pc, pd := toVec(points[a]), toVec(points[b]), toVec(points[c]), toVec(points[d])
	if pa == pc || pa == pd || pb == pc || pb == pd {
		return false
	}

	o1 := orient(pa, pb, pc)
	o2 := orient(pa, pb, pd)
	o3 := orient(pc, pd, pa)
	o4 := orient(pc, pd, pb)

	return (o1 != o2 && o3 != o4) ||
		(o1 == colinear && onSegment(pa, pc, pb)) ||
		(o2 == colinear && onSegment(pa, pd, pb)) ||
		(o3 == colinear && onSegment(pc, pa, pd)) ||
		(o4 == colinear && onSegment(pc, pb, pd))
}

// orient reports p,q,r's orientation via the cross product of pq and qr.
func orient(p, q, r r2.Vec) orientation {
	pq := r2.Sub(q, p)
	qr := r2.Sub(r, q)
	val := -r2.Cross(pq, qr)

	switch {
	case val > 0:
		return clockwise
	case val < 0:
		return counterclockwise
	default:
		return colinear
	}
}

func onSegment(p, q, r r2.Vec) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// CheckStraightLineEmbedding validates a straight-line embedding without
// paying for a full Build, for callers that only need the planarity
// predicate (e.g. fixtures validating a generated layout).
func CheckStraightLineEmbedding[W weight.Weight](points []pgraph.Point, edges []WeightedPair[W]) error {
	n := len(points)
	adj := make([][]prePlanarEdge[W], n)
	for _, pair := range edges {
		if pair.U < 0 || pair.U >= n || pair.V < 0 || pair.V >= n {
			return fmt.Errorf("%w: edge (%d,%d), n=%d", ErrVertexRange, pair.U, pair.V, n)
		}
		addPreEdge(adj, pair.U, pair.V, pair.Weight, SumWeights[W])
	}

	return checkCrossings(points, adj, false)
}
