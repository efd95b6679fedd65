package diversion

import (
	"fmt"

	"github.com/katalvlaran/planarcut/derigs"
	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/planar"
	"github.com/katalvlaran/planarcut/splitgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// Options tunes Divert's behavior.
type Options struct {
	// Verbose gates diagnostic fmt.Printf tracing of each reduction stage.
	Verbose bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions disables verbose tracing.
func DefaultOptions() Options { return Options{} }

// WithVerbose toggles diagnostic tracing.
func WithVerbose(verbose bool) Option {
	return func(o *Options) { o.Verbose = verbose }
}

// Divert finds the minimum-weight edge set whose removal from g forces
// every surviving s-t path through the diversion edge (du,dv).
//
// The reduction: first check (via Reachable) whether any s-t path already
// avoids (du,dv); if none does, no diversion is needed. Otherwise rotate
// that avoidance path into the dual graph, split the dual against it, and
// search for a shortest odd path between the two faces the diversion edge
// borders — an odd-length dual path corresponds to a primal edge cut that
// severs every avoidance route while leaving the diversion edge itself
// crossable.
//
// Grounded on the original implementation's network_diversion.
func Divert[W weight.Weight](g *planar.Graph[W], s, t, du, dv int, opts ...Option) (Result[W, pgraph.PlanarEdge[W]], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	avoidPath, found, err := Reachable[W](g.Real(), s, t, du, dv)
	if err != nil {
		return Result[W, pgraph.PlanarEdge[W]]{}, err
	}
	if !found {
		if o.Verbose {
			fmt.Printf("diversion: no %d-%d path avoids (%d,%d), no diversion needed\n", s, t, du, dv)
		}

		return NoCutNeededResult[W, pgraph.PlanarEdge[W]](), nil
	}

	rotatedAvoidPath := make([]pgraph.PlanarEdge[W], len(avoidPath))
	for i, e := range avoidPath {
		rotatedAvoidPath[i] = e.RotateRight()
	}

	var diversionEdge pgraph.PlanarEdge[W]
	var haveDiversionEdge bool
	for _, e := range g.Real().N(du) {
		if e.To() == dv {
			diversionEdge = e
			haveDiversionEdge = true

			break
		}
	}
	if !haveDiversionEdge {
		return Result[W, pgraph.PlanarEdge[W]]{}, fmt.Errorf("diversion: no edge (%d,%d) in the graph", du, dv)
	}

	split, unsplit := splitgraph.Split(g.Dual(), rotatedAvoidPath)

	res := derigs.ShortestOddPath[W](split, diversionEdge.Left(), diversionEdge.Right())
	if !res.IsPossible() {
		if o.Verbose {
			fmt.Printf("diversion: no cut exists forcing %d-%d through (%d,%d)\n", s, t, du, dv)
		}

		return ImpossibleResult[W, pgraph.PlanarEdge[W]](), nil
	}

	cost, _ := res.Cost()
	dualPath, _ := res.Path()

	mapped := make([]pgraph.PlanarEdge[W], 0, len(dualPath))
	for _, e := range dualPath {
		if orig, ok := unsplit(e); ok {
			mapped = append(mapped, orig)
		}
	}

	cutEdges := make([]pgraph.PlanarEdge[W], len(mapped))
	for i, e := range mapped {
		cutEdges[i] = e.RotateRight()
	}

	if o.Verbose {
		fmt.Printf("diversion: cutting %d edges at total cost %v\n", len(cutEdges), cost)
	}

	return CutResult(cost, cutEdges), nil
}
