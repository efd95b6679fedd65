package basis

// UnionFindBase is a path-compressed union-find Basis. Complexity: Get is
// amortized near-O(1) (inverse-Ackermann with path compression alone, no
// union-by-rank since SetBase is a direct assignment, not a union of two
// roots); SetBase is O(1).
type UnionFindBase struct {
	parent []int
}

// NewUnionFind returns a Basis over [0,n) with every vertex its own base.
func NewUnionFind(n int) *UnionFindBase {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &UnionFindBase{parent: parent}
}

// Get returns u's representative, compressing the path from u to it.
func (b *UnionFindBase) Get(u int) int {
	if b.parent[u] != u {
		b.parent[u] = b.Get(b.parent[u])
	}

	return b.parent[u]
}

// SetBase assigns u's base directly to b's current representative.
func (b *UnionFindBase) SetBase(u, newBase int) {
	b.parent[u] = newBase
}

// SameBase reports whether u and v resolve to the same representative.
func (b *UnionFindBase) SameBase(u, v int) bool {
	return b.Get(u) == b.Get(v)
}
