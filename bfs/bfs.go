package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadpath/core"
)

// queueItem pairs a dense node index with its hop depth.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited []bool
	res     *Result
}

// Walk runs breadth-first search on g from start along outgoing arcs.
// Returns ErrGraphNil, a wrapped core.ErrUnknownNodeID for a missing start,
// ErrOptionViolation for bad options, the context error on cancellation, or
// any error returned by the visit hook. On error the partial Result is
// still returned.
func Walk(g *core.Graph, start int64, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := g.IndexOf(start)
	if err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 64),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int64, 0, 64),
			Depth:  make(map[int64]int),
			Parent: make(map[int64]int64),
		},
	}

	w.enqueue(s, 0, -1)
	return w.res, w.loop()
}

// enqueue marks index visited at depth d and records its parent.
func (w *walker) enqueue(index, d, parent int) {
	w.visited[index] = true
	id := w.graph.NodeAt(index).ID
	w.res.Depth[id] = d
	if parent >= 0 {
		w.res.Parent[id] = w.graph.NodeAt(parent).ID
	}
	w.queue = append(w.queue, queueItem{index: index, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[head]
		id := w.graph.NodeAt(item.index).ID
		w.res.Order = append(w.res.Order, id)
		if err := w.opts.OnVisit(id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for v := range w.graph.Arcs(item.index) {
			if !w.visited[v] {
				w.enqueue(v, next, item.index)
			}
		}
	}

	return nil
}
