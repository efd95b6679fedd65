package ioformat

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// ParseUndirectedGraph reads the plain graph format: a vertex-count line
// followed by one "u v [w]" line per edge. Complexity: O(n+m).
func ParseUndirectedGraph[W weight.Weight](r io.Reader) (*pgraph.UndirectedGraph[W, pgraph.Edge[W]], error) {
	lines, err := significantLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	n, err := strconv.Atoi(lines[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, lines[0])
	}

	g := pgraph.NewUndirectedGraph[W, pgraph.Edge[W]](n)
	for _, line := range lines[1:] {
		u, v, w, err := parseEdgeLine[W](line)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, line)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge (%d,%d), n=%d", pgraph.ErrVertexRange, u, v, n)
		}
		g.AddEdge(pgraph.NewEdge(u, v, w))
	}

	return g, nil
}

// WriteUndirectedGraph renders g in the format ParseUndirectedGraph reads
// back: the vertex count, then one "u v w" line per undirected edge in
// From-then-To order, each edge written exactly once.
func WriteUndirectedGraph[W weight.Weight](w io.Writer, g *pgraph.UndirectedGraph[W, pgraph.Edge[W]]) error {
	if _, err := fmt.Fprintln(w, g.VertexCount()); err != nil {
		return err
	}

	skipLoop := false
	for _, e := range g.Edges() {
		if e.From() > e.To() {
			continue
		}
		if e.From() == e.To() {
			// A self-loop's two half-edges sit side by side in one bucket.
			skipLoop = !skipLoop
			if !skipLoop {
				continue
			}
		}
		if _, err := fmt.Fprintf(w, "%d %d %v\n", e.From(), e.To(), e.Weight()); err != nil {
			return err
		}
	}

	return nil
}
