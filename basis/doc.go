// Package basis provides two interchangeable equivalence-class structures
// used by the Derigs engine (package derigs) to track which vertices have
// been merged into the same blossom.
//
// Basis is deliberately not a classic union-by-rank disjoint-set: SetBase
// assigns a vertex's base directly rather than unioning two roots, mirroring
// the blossom-contraction step's "every vertex on this cycle now shares the
// blossom's base" operation. UnionFindBase answers Get with a path-compressed lookup
// (amortized near-O(1), compression as a side effect of a logically-const
// read, exactly like the union-find disjoint-set in prim_kruskal.Kruskal,
// generalized here from string-keyed maps to dense-int slices since this
// package's vertices are always in [0,n)). ObserverBase instead keeps an
// explicit dependents list per representative and splices it eagerly on
// SetBase, trading a heavier write for a lock-free O(1) Get.
//
// Both must answer SameBase identically for any sequence of operations; see
// conformance_test.go for the shared black-box test.
package basis
