package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/roadpath/core"
)

// noPred marks a node without a predecessor.
const noPred = -1

// ShortestPath computes a minimum-weight path from start to end in g.
//
// Returns:
//
//   - Result{Status: Found}:       Path runs start→end, Distance is its total weight.
//   - Result{Status: SameNode}:    start == end; Path is [start], Distance is 0.
//   - Result{Status: Unreachable}: Path is nil, Distance is +Inf.
//   - err: ErrNilGraph, or core.ErrUnknownNodeID naming the missing endpoint.
//
// Among equal-weight paths the one whose last hop was discovered first wins
// (strict relaxation, FIFO heap ties, input edge-list order).
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; stops when end is dequeued.
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end int64, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	s, err := g.IndexOf(start)
	if err != nil {
		return Result{}, fmt.Errorf("dijkstra: start: %w", err)
	}
	t, err := g.IndexOf(end)
	if err != nil {
		return Result{}, fmt.Errorf("dijkstra: end: %w", err)
	}

	// 3) Trivial query: no search needed.
	if s == t {
		return Result{Status: SameNode, Path: []int64{start}, Distance: 0}, nil
	}

	// 4) Run the search with fresh scratch state.
	r := newRunner(g, cfg, s, t)
	if !r.process() {
		return Result{Status: Unreachable, Distance: math.Inf(1), Settled: r.settled}, nil
	}

	return Result{
		Status:   Found,
		Path:     r.path(),
		Distance: r.dist[t],
		Settled:  r.settled,
	}, nil
}

// runner holds the mutable state for a single search. It is never shared.
type runner struct {
	g       *core.Graph
	options Options
	source  int
	target  int
	dist    []float64 // index → best known distance from source
	prev    []int     // index → predecessor index on the best path, noPred if none
	visited []bool    // index → distance finalized
	pq      itemPQ    // lazy min-heap of (index, dist, seq)
	seq     uint64    // push counter for FIFO tie-breaking
	settled int       // nodes finalized so far
}

// newRunner allocates scratch arrays sized to g and seeds the heap with source.
func newRunner(g *core.Graph, cfg Options, source, target int) *runner {
	n := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		target:  target,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(itemPQ, 0, 64),
	}

	// dist[v] = +∞ and no predecessor for every v, then dist[source] = 0.
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = noPred
	}
	r.dist[source] = 0
	r.push(source, 0)

	return r
}

// process is the main loop. It reports whether target was dequeued.
//
// Loop termination conditions:
//
//   - target is popped (early exit; its distance is final).
//   - The heap becomes empty (target unreachable).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(item)
		u := item.index

		// 2) Everything left in the heap is at least this far away.
		if item.dist > r.options.MaxDistance {
			return false
		}

		// 3) Early exit: the first time target is popped its distance is final.
		if u == r.target {
			return true
		}

		// 4) Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 5) Finalize u and relax its outgoing arcs.
		r.visited[u] = true
		r.settled++
		r.relax(u)
	}

	return false
}

// relax tries to improve the distance of every arc target of u.
// Only strictly shorter candidates are accepted, so the first-discovered
// equal-cost predecessor is kept.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for v, w := range r.g.Arcs(u) {
		if w >= r.options.InfEdgeThreshold {
			continue // impassable
		}
		if r.visited[v] {
			continue
		}

		alt := du + w
		if alt > r.options.MaxDistance {
			continue
		}
		if alt >= r.dist[v] {
			continue
		}

		r.dist[v] = alt
		r.prev[v] = u
		r.push(v, alt)
	}
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner) push(index int, dist float64) {
	heap.Push(&r.pq, item{index: index, dist: dist, seq: r.seq})
	r.seq++
}

// path walks predecessor links from target back to source and returns the
// node IDs in source→target order.
func (r *runner) path() []int64 {
	var out []int64
	for at := r.target; at != noPred; at = r.prev[at] {
		out = append(out, r.g.NodeAt(at).ID)
	}
	slices.Reverse(out)

	return out
}

// item is a heap entry: a node index keyed by the distance it was pushed with.
// The key travels with the entry, so ordering never depends on state that
// changes while the entry sits in the heap.
type item struct {
	index int
	dist  float64
	seq   uint64
}

// itemPQ is a min-heap of items ordered by (dist, seq).
type itemPQ []item

// Len returns the number of items in the heap.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *itemPQ) Push(x any) { *pq = append(*pq, x.(item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *itemPQ) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
