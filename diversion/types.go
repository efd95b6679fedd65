package diversion

import "github.com/katalvlaran/planarcut/weight"

// Status classifies the three distinct outcomes network diversion can
// reach. They are distinct because "no diversion needed" (every s-t path
// already crosses the diversion edge) and "no diversion possible" (every
// cut that would force traffic through it is unavailable) require different
// handling from a caller: the former is success with an empty cut, the
// latter is failure.
type Status int

const (
	// Cut means the search found a minimum-weight edge set to remove.
	Cut Status = iota
	// NoCutNeeded means no s-t path avoiding the diversion edge exists in
	// the first place, so removing nothing already satisfies the query.
	NoCutNeeded
	// Impossible means some s-t path avoids the diversion edge, but no
	// finite-cost cut forces every such path through it.
	Impossible
)

// Result is the outcome of Divert: a Status plus, for Cut, the cost and
// edge set of the minimum diversion.
type Result[W weight.Weight, E any] struct {
	status Status
	cost   W
	edges  []E
}

// CutResult reports a found diversion of the given cost and edge set.
func CutResult[W weight.Weight, E any](cost W, edges []E) Result[W, E] {
	return Result[W, E]{status: Cut, cost: cost, edges: edges}
}

// NoCutNeededResult reports that no s-t path avoids the diversion edge, so
// an empty cut suffices.
func NoCutNeededResult[W weight.Weight, E any]() Result[W, E] {
	return Result[W, E]{status: NoCutNeeded}
}

// ImpossibleResult reports that no diversion exists.
func ImpossibleResult[W weight.Weight, E any]() Result[W, E] {
	return Result[W, E]{status: Impossible}
}

// Status reports which of the three outcomes r represents.
func (r Result[W, E]) Status() Status { return r.status }

// Cost returns r's cost and true, or the zero value and false if r is
// Impossible. NoCutNeeded's cost is definitionally zero but is reported
// through this same accessor for symmetry with CutResult.
func (r Result[W, E]) Cost() (W, bool) {
	if r.status == Impossible {
		var zero W

		return zero, false
	}

	return r.cost, true
}

// Edges returns r's cut edge set and true, or nil and false if r is not a
// Cut result.
func (r Result[W, E]) Edges() ([]E, bool) {
	if r.status != Cut {
		return nil, false
	}

	return r.edges, true
}
