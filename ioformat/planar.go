package ioformat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/planar"
	"github.com/katalvlaran/planarcut/weight"
)

// ParsePlanarGraph reads the planar embedding format: a "n m" header line,
// then exactly n "id x y" vertex lines, then exactly m "u v [w]" edge lines,
// and hands the result to planar.Build. opts configures Build the same way
// a caller constructing the embedding programmatically would (coalescing
// strategy, AssertPlanarity, verbosity). Complexity: the cost of Build
// itself (O((n+m) log m), plus O(m^2) when AssertPlanarity is set, as it is
// by default), plus O(n+m) for parsing.
func ParsePlanarGraph[W weight.Weight](r io.Reader, opts ...planar.Option[W]) (planar.BuildResult[W], error) {
	lines, err := significantLines(r)
	if err != nil {
		return planar.BuildResult[W]{}, err
	}
	if len(lines) == 0 {
		return planar.BuildResult[W]{}, ErrEmptyInput
	}

	n, m, err := parseNM(lines[0])
	if err != nil {
		return planar.BuildResult[W]{}, err
	}
	if len(lines) < 1+n+m {
		return planar.BuildResult[W]{}, fmt.Errorf("%w: header declares %d vertices and %d edges, found %d more line(s)",
			ErrVertexCountMismatch, n, m, len(lines)-1)
	}

	points := make([]pgraph.Point, n)
	for i := 0; i < n; i++ {
		id, p, err := parseVertexLine(lines[1+i])
		if err != nil {
			return planar.BuildResult[W]{}, err
		}
		if id < 0 || id >= n {
			return planar.BuildResult[W]{}, fmt.Errorf("%w: id %d out of range [0,%d)", ErrMalformedVertex, id, n)
		}
		points[id] = p
	}

	edges := make([]planar.WeightedPair[W], m)
	for i := 0; i < m; i++ {
		u, v, w, err := parseEdgeLine[W](lines[1+n+i])
		if err != nil {
			return planar.BuildResult[W]{}, fmt.Errorf("%w: %q", err, lines[1+n+i])
		}
		edges[i] = planar.WeightedPair[W]{U: u, V: v, Weight: w}
	}

	return planar.Build[W](points, edges, opts...)
}

// WritePlanarGraph renders g's embedding in the format ParsePlanarGraph
// reads back: a "n m" header, then each vertex's coordinates by index, then
// each real-graph edge once in "u v w" form.
func WritePlanarGraph[W weight.Weight](w io.Writer, g *planar.Graph[W]) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", g.N(), g.M()); err != nil {
		return err
	}

	for id, p := range g.Points() {
		if _, err := fmt.Fprintf(w, "%d %v %v\n", id, p.X, p.Y); err != nil {
			return err
		}
	}

	for _, e := range g.Real().Edges() {
		if e.From() > e.To() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d %d %v\n", e.From(), e.To(), e.Weight()); err != nil {
			return err
		}
	}

	return nil
}

func parseNM(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	n, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	m, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}

	return n, m, nil
}

func parseVertexLine(line string) (id int, p pgraph.Point, err error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, pgraph.Point{}, fmt.Errorf("%w: %q", ErrMalformedVertex, line)
	}

	id, errID := strconv.Atoi(fields[0])
	x, errX := strconv.ParseFloat(fields[1], 64)
	y, errY := strconv.ParseFloat(fields[2], 64)
	if errID != nil || errX != nil || errY != nil {
		return 0, pgraph.Point{}, fmt.Errorf("%w: %q", ErrMalformedVertex, line)
	}

	return id, pgraph.Point{X: x, Y: y}, nil
}
