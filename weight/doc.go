// Package weight defines the generic numeric constraint shared by every
// algorithm package in this module, and Cost[W], a sentinel-infinity wrapper
// around W used by shortest-path style computations.
//
// Weight must tolerate both integer and floating-point instantiations
// (int, int64, float64, ...): Derigs' algorithm and the planar reductions
// only ever add, subtract, and compare edge weights, so the constraint is
// kept to exactly that surface plus ordering.
package weight
