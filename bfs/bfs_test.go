package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/planarcut/bfs"
	"github.com/katalvlaran/planarcut/pgraph"
)

func line(n int) *pgraph.UndirectedGraph[int, pgraph.Edge[int]] {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](n)
	for i := 0; i+1 < n; i++ {
		g.AddEdge(pgraph.NewEdge(i, i+1, 0))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[int, pgraph.Edge[int]](nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}

	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](1)
	if _, err := bfs.BFS[int](g, 5); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}

	if _, err := bfs.BFS[int](g, 0, bfs.WithMaxDepth[int, pgraph.Edge[int]](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](1)
	res, err := bfs.BFS[int](g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[0]; d != 0 {
		t.Errorf("Depth[0] = %d; want 0", d)
	}
}

// TestCycleAndDepths covers a simple 4-cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](4)
	g.AddEdge(pgraph.NewEdge(0, 1, 0))
	g.AddEdge(pgraph.NewEdge(1, 2, 0))
	g.AddEdge(pgraph.NewEdge(2, 3, 0))
	g.AddEdge(pgraph.NewEdge(3, 0, 0))

	res, err := bfs.BFS[int](g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Order[0] != 0 {
		t.Errorf("first vertex = %d; want 0", res.Order[0])
	}
	layer1 := map[int]bool{res.Order[1]: true, res.Order[2]: true}
	if !layer1[1] || !layer1[3] {
		t.Errorf("depth-1 layer = %v; want {1,3}", res.Order[1:3])
	}
	if res.Order[3] != 2 {
		t.Errorf("last vertex = %d; want 2", res.Order[3])
	}

	if got, want := res.Depth[0], 0; got != want {
		t.Errorf("Depth[0] = %d; want %d", got, want)
	}
	for _, v := range []int{1, 3} {
		if got, want := res.Depth[v], 1; got != want {
			t.Errorf("Depth[%d] = %d; want %d", v, got, want)
		}
	}
	if got, want := res.Depth[2], 2; got != want {
		t.Errorf("Depth[2] = %d; want %d", got, want)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](4)
	g.AddEdge(pgraph.NewEdge(0, 1, 0))
	g.AddEdge(pgraph.NewEdge(2, 3, 0))

	res0, _ := bfs.BFS[int](g, 0)
	if !reflect.DeepEqual(res0.Order, []int{0, 1}) {
		t.Errorf("From 0: got %v; want [0 1]", res0.Order)
	}
	res2, _ := bfs.BFS[int](g, 2)
	if !reflect.DeepEqual(res2.Order, []int{2, 3}) {
		t.Errorf("From 2: got %v; want [2 3]", res2.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := line(3)
	if res, _ := bfs.BFS[int](g, 0, bfs.WithMaxDepth[int, pgraph.Edge[int]](1)); !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("MaxDepth=1: got %v; want [0 1]", res.Order)
	}
	if res, _ := bfs.BFS[int](g, 0, bfs.WithMaxDepth[int, pgraph.Edge[int]](0)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=0: got %v; want [0 1 2]", res.Order)
	}
	if res, _ := bfs.BFS[int](g, 0, bfs.WithMaxDepth[int, pgraph.Edge[int]](10)); !reflect.DeepEqual(res.Order, []int{0, 1, 2}) {
		t.Errorf("MaxDepth=10: got %v; want [0 1 2]", res.Order)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := line(3)
	res, _ := bfs.BFS[int](g, 0,
		bfs.WithFilterNeighbor[int](func(e pgraph.Edge[int]) bool {
			return !(e.From() == 1 && e.To() == 2)
		}),
	)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_ForbiddenEdge shows that WithForbiddenEdge blocks traversal in
// either direction, independent of FilterNeighbor.
func TestBFS_ForbiddenEdge(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](3)
	g.AddEdge(pgraph.NewEdge(0, 1, 0))
	g.AddEdge(pgraph.NewEdge(1, 2, 0))
	g.AddEdge(pgraph.NewEdge(0, 2, 0))

	res, _ := bfs.BFS[int](g, 0, bfs.WithForbiddenEdge[int, pgraph.Edge[int]](0, 2))
	if _, err := res.PathTo(2); err != nil {
		t.Fatalf("expected a path to 2 via 1, got error: %v", err)
	}
	if d := res.Depth[2]; d != 2 {
		t.Errorf("Depth[2] = %d; want 2 (direct 0-2 edge must be forbidden)", d)
	}
}

// TestBFS_SelfLoopAndParallelDedup ensures that loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallelDedup(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](2)
	g.AddEdge(pgraph.NewEdge(0, 0, 0)) // self-loop
	g.AddEdge(pgraph.NewEdge(0, 1, 0))
	g.AddEdge(pgraph.NewEdge(0, 1, 0)) // parallel

	res, _ := bfs.BFS[int](g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("SelfLoop/Parallel: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := line(3)

	var enq, deq, vis []string
	makeEntry := func(prefix string, id, d int) string {
		return prefix + ":" + strconv.Itoa(id) + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS[int](
		g, 0,
		bfs.WithOnEnqueue[int, pgraph.Edge[int]](func(id, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue[int, pgraph.Edge[int]](func(id, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit[int, pgraph.Edge[int]](func(id, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	wantDepths := []string{"0@0", "1@1", "2@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_PathTo covers both trivial (start->start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := pgraph.NewUndirectedGraph[int, pgraph.Edge[int]](2)
	res, _ := bfs.BFS[int](g, 0)
	if path, _ := res.PathTo(0); !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", path)
	}
	_, err := res.PathTo(1)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_EdgePathTo checks the reconstructed edge sequence matches the
// vertex sequence.
func TestBFS_EdgePathTo(t *testing.T) {
	g := line(4)
	res, err := bfs.BFS[int](g, 0)
	if err != nil {
		t.Fatal(err)
	}
	edges, ok := res.EdgePathTo(3)
	if !ok {
		t.Fatal("expected a path to 3")
	}
	require := []struct{ from, to int }{{0, 1}, {1, 2}, {2, 3}}
	if len(edges) != len(require) {
		t.Fatalf("EdgePathTo length = %d; want %d", len(edges), len(require))
	}
	for i, want := range require {
		if edges[i].From() != want.from || edges[i].To() != want.to {
			t.Errorf("edge[%d] = %d->%d; want %d->%d", i, edges[i].From(), edges[i].To(), want.from, want.to)
		}
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := line(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS[int](g, 0, bfs.WithContext[int, pgraph.Edge[int]](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := line(2)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS[int](g, 0); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
