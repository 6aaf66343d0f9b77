package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/core"
)

// mustLoad builds a graph with nodes 1..n and the given u→v arcs.
func mustLoad(t testing.TB, n int, arcs ...[2]int64) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, n)
	for i := range nodes {
		nodes[i] = core.Node{ID: int64(i + 1)}
	}
	edges := make([]core.Edge, len(arcs))
	for i, a := range arcs {
		edges[i] = core.Edge{From: a[0], To: a[1], Weight: 1}
	}
	g, err := core.Load(nodes, edges)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return g
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(nil, 1); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustLoad(t, 1)
	if _, err := bfs.Walk(g, 9); !errors.Is(err, core.ErrUnknownNodeID) {
		t.Errorf("missing start: want ErrUnknownNodeID, got %v", err)
	}
	if _, err := bfs.Walk(g, 1, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestWalk_SingleNode covers the trivial one-node graph.
func TestWalk_SingleNode(t *testing.T) {
	res, err := bfs.Walk(mustLoad(t, 1), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached() != 1 || res.MaxDepth() != 0 {
		t.Errorf("Reached, MaxDepth = %d, %d; want 1, 0", res.Reached(), res.MaxDepth())
	}
}

// TestWalk_FollowsDirection checks that arcs are only followed forwards and
// that layers come out in edge-list order.
func TestWalk_FollowsDirection(t *testing.T) {
	// 1→3, 1→2, 2→4, 3→4, 5→1 (5 is upstream and must not be reached)
	g := mustLoad(t, 5, [2]int64{1, 3}, [2]int64{1, 2}, [2]int64{2, 4}, [2]int64{3, 4}, [2]int64{5, 1})

	res, err := bfs.Walk(g, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{1, 3, 2, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, ok := res.Depth[5]; ok {
		t.Errorf("node 5 reached against arc direction")
	}
	if res.MaxDepth() != 2 {
		t.Errorf("MaxDepth = %d; want 2", res.MaxDepth())
	}

	path, err := res.PathTo(4)
	if err != nil {
		t.Fatalf("PathTo(4): %v", err)
	}
	// 4 is first discovered from 3, which was enqueued before 2.
	if want := []int64{1, 3, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if _, err := res.PathTo(5); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(5): want ErrNotReached, got %v", err)
	}
}

// TestWalk_MaxDepth stops a chain walk after the requested number of hops.
func TestWalk_MaxDepth(t *testing.T) {
	g := mustLoad(t, 5, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 4}, [2]int64{4, 5})

	res, err := bfs.Walk(g, 1, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_LoopsAndCycles must terminate and visit each node once.
func TestWalk_LoopsAndCycles(t *testing.T) {
	g := mustLoad(t, 3, [2]int64{1, 1}, [2]int64{1, 2}, [2]int64{2, 3}, [2]int64{3, 1})

	res, err := bfs.Walk(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int64{2, 3, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_OnVisitAbort propagates hook errors and keeps the partial result.
func TestWalk_OnVisitAbort(t *testing.T) {
	g := mustLoad(t, 3, [2]int64{1, 2}, [2]int64{2, 3})
	stop := errors.New("stop")

	res, err := bfs.Walk(g, 1, bfs.WithOnVisit(func(id int64, _ int) error {
		if id == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []int64{1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("partial Order = %v; want %v", res.Order, want)
	}
}

// TestWalk_Cancelled returns the context error before visiting anything.
func TestWalk_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.Walk(mustLoad(t, 2, [2]int64{1, 2}), 1, bfs.WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
