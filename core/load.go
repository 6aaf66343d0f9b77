// SPDX-License-Identifier: MIT
//
// File: load.go
// Role: One-shot Graph construction (index build, validation, CSR packing).
// Determinism:
//   - Arcs of each node keep the relative order of the input edge list.

package core

import (
	"fmt"
	"math"
)

// Load builds a Graph from nodes and directed edges.
//
// Implementation:
//   - Stage 1: Build the external ID → dense index map; reject duplicates.
//   - Stage 2: Resolve edge endpoints, compute weights (WithWeightFunc) and validate them.
//   - Stage 3: Pack outgoing arcs into CSR arrays with a stable counting pass.
//
// Errors:
//   - ErrDuplicateNodeID: two nodes share an ID.
//   - ErrUnknownNodeID:   an edge endpoint is not among nodes.
//   - ErrNegativeWeight:  an edge weight is < 0.
//   - ErrBadWeight:       an edge weight is NaN or infinite.
//
// The input slices are copied; the caller may reuse them afterwards.
// Complexity: O(V + E) time and space.
func Load(nodes []Node, edges []Edge, opts ...LoadOption) (*Graph, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Index nodes by external ID.
	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		if prev, dup := index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %d at rows %d and %d", ErrDuplicateNodeID, n.ID, prev, i)
		}
		index[n.ID] = i
	}

	g := &Graph{
		nodes:    append([]Node(nil), nodes...),
		edges:    make([]Edge, len(edges)),
		index:    index,
		firstOut: make([]int, len(nodes)+1),
		head:     make([]int, len(edges)),
		weight:   make([]float64, len(edges)),
	}

	// 2) Resolve endpoints and weights; count out-degrees into firstOut[u+1].
	from := make([]int, len(edges))
	to := make([]int, len(edges))
	for k, e := range edges {
		u, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) source %d", ErrUnknownNodeID, k, e.From, e.To, e.From)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) target %d", ErrUnknownNodeID, k, e.From, e.To, e.To)
		}
		if cfg.weightFn != nil {
			e.Weight = cfg.weightFn(g.nodes[u], g.nodes[v])
		}
		if err := checkWeight(e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%g", err, k, e.From, e.To, e.Weight)
		}
		g.edges[k] = e
		from[k], to[k] = u, v
		g.firstOut[u+1]++
	}

	// 3) Prefix sums turn counts into offsets, then place arcs in input order.
	for i := 1; i < len(g.firstOut); i++ {
		g.firstOut[i] += g.firstOut[i-1]
	}
	cursor := append([]int(nil), g.firstOut[:len(nodes)]...)
	for k := range g.edges {
		u := from[k]
		g.head[cursor[u]] = to[k]
		g.weight[cursor[u]] = g.edges[k].Weight
		cursor[u]++
	}

	return g, nil
}

// checkWeight reports why w cannot be used as a Dijkstra edge weight.
func checkWeight(w float64) error {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		return ErrBadWeight
	case w < 0:
		return ErrNegativeWeight
	}

	return nil
}
