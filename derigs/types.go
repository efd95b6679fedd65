package derigs

import "github.com/katalvlaran/planarcut/weight"

// PathResult is the Possible{Cost,Path} / Impossible sum type ShortestOddPath
// returns. The zero value is Impossible.
type PathResult[W weight.Weight, E any] struct {
	possible bool
	cost     W
	path     []E
}

// Possible wraps a found odd path and its total cost.
func Possible[W weight.Weight, E any](cost W, path []E) PathResult[W, E] {
	return PathResult[W, E]{possible: true, cost: cost, path: path}
}

// Impossible reports that no odd s-t path exists.
func Impossible[W weight.Weight, E any]() PathResult[W, E] {
	return PathResult[W, E]{}
}

// IsPossible reports whether an odd path was found.
func (r PathResult[W, E]) IsPossible() bool { return r.possible }

// Cost returns the path's total weight and true, or the zero value and false
// if no path was found.
func (r PathResult[W, E]) Cost() (W, bool) { return r.cost, r.possible }

// Path returns the edge sequence and true, or nil and false if no path was
// found.
func (r PathResult[W, E]) Path() ([]E, bool) { return r.path, r.possible }

// Options tunes ShortestOddPath's diagnostics.
type Options struct {
	// Verbose gates fmt.Printf tracing of the search, mirroring the original
	// implementation's debug() calls.
	Verbose bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns Verbose disabled.
func DefaultOptions() Options { return Options{} }

// WithVerbose toggles debug tracing.
func WithVerbose(verbose bool) Option {
	return func(o *Options) { o.Verbose = verbose }
}
