package basis

// ObserverBase is a Basis that keeps an explicit dependents list per
// representative and splices it eagerly whenever a base changes, so Get is
// a plain O(1) slice read with no path compression required.
type ObserverBase struct {
	base       []int
	dependents [][]int // dependents[r] is nil until r has at least one dependent
}

// NewObserver returns a Basis over [0,n) with every vertex its own base.
func NewObserver(n int) *ObserverBase {
	return &ObserverBase{
		base:       identity(n),
		dependents: make([][]int, n),
	}
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// Get returns u's base directly; no compression needed since SetBase keeps
// every dependent's base current.
func (b *ObserverBase) Get(u int) int {
	return b.base[u]
}

// SetBase assigns u's base to newBase's own base, splicing u and anything
// already depending on u onto newBase's dependents list, and re-pointing
// every such vertex's base at newBase in one pass.
func (b *ObserverBase) SetBase(u, newBase int) {
	if u == newBase {
		return
	}
	if root := b.base[newBase]; root != newBase {
		b.SetBase(u, root)

		return
	}

	uDeps := b.dependents[u]
	b.dependents[u] = nil

	b.base[u] = newBase
	b.dependents[newBase] = append(b.dependents[newBase], u)
	for _, v := range uDeps {
		b.base[v] = newBase
	}
	b.dependents[newBase] = append(b.dependents[newBase], uDeps...)
}

// SameBase reports whether u and v currently share a base.
func (b *ObserverBase) SameBase(u, v int) bool {
	return b.base[u] == b.base[v]
}
