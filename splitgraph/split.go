package splitgraph

import (
	"sort"

	"github.com/katalvlaran/planarcut/pgraph"
	"github.com/katalvlaran/planarcut/weight"
)

// undirectedKey is a banned edge's canonical (from,to) pair with from<=to,
// used as the sorted-slice membership key in place of the original's
// BTreeSet<E>; Go's standard library has no ordered-set container.
type undirectedKey struct{ from, to int }

func keyOf[W weight.Weight, E pgraph.EdgeLike[W, E]](e E) undirectedKey {
	from, to := e.From(), e.To()
	if from > to {
		from, to = to, from
	}

	return undirectedKey{from: from, to: to}
}

func lessKey(a, b undirectedKey) bool {
	if a.from != b.from {
		return a.from < b.from
	}

	return a.to < b.to
}

// Split returns a copy of g with every edge not present in banned subdivided
// by a fresh midpoint vertex, plus an inverse map from a split-graph edge
// back to the original edge it came from (false if e leaves a midpoint
// vertex, i.e. e.From() is one of the new vertices).
//
// Complexity: O((n+m) log m) for the sort plus the single adjacency pass.
func Split[W weight.Weight, E pgraph.EdgeLike[W, E]](g *pgraph.UndirectedGraph[W, E], banned []E) (*pgraph.UndirectedGraph[W, E], func(E) (E, bool)) {
	keys := make([]undirectedKey, 0, len(banned))
	for _, e := range banned {
		keys = append(keys, keyOf[W](e))
	}
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	deduped := keys[:0]
	for i, k := range keys {
		if i == 0 || k != deduped[len(deduped)-1] {
			deduped = append(deduped, k)
		}
	}
	keys = deduped

	isBanned := func(from, to int) bool {
		k := undirectedKey{from: from, to: to}
		if k.from > k.to {
			k.from, k.to = k.to, k.from
		}
		i := sort.Search(len(keys), func(i int) bool { return !lessKey(keys[i], k) })

		return i < len(keys) && keys[i] == k
	}

	oldN := g.VertexCount()
	newN := oldN + g.EdgeCount() - len(keys)
	split := pgraph.NewUndirectedGraph[W, E](newN)

	originals := make([]E, 0, g.EdgeCount()-len(keys))
	m := oldN
	for _, u := range g.Vertices() {
		for _, e := range g.N(u) {
			if e.From() >= e.To() {
				continue
			}
			if isBanned(e.From(), e.To()) {
				split.AddEdge(e)

				continue
			}

			a, b := e.Subdivide(m)
			split.AddEdge(a)
			split.AddEdge(b)
			originals = append(originals, e)
			m++
		}
	}

	unsplit := func(e E) (E, bool) {
		var zero E
		switch {
		case e.From() >= oldN:
			return zero, false
		case e.To() < oldN:
			return e, true
		default:
			orig := originals[e.To()-oldN]
			if orig.From() == e.From() {
				return orig, true
			}

			return orig.Reverse(), true
		}
	}

	return split, unsplit
}
