// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only queries: ID lookup, adjacency iteration, snapshots, stats.
// Determinism:
//   - Nodes() and Edges() return input order.
//   - Neighbors()/Arcs() yield arcs in input edge-list order.

package core

import (
	"fmt"
	"iter"
	"math"
)

// Contains reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) Contains(id int64) bool {
	_, ok := g.index[id]

	return ok
}

// IndexOf returns the dense index of the node with the given ID.
// Returns ErrUnknownNodeID if the ID is absent.
// Complexity: O(1).
func (g *Graph) IndexOf(id int64) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %d", ErrUnknownNodeID, id)
	}

	return i, nil
}

// Node returns the node with the given ID.
// Returns ErrUnknownNodeID if the ID is absent.
func (g *Graph) Node(id int64) (Node, error) {
	i, err := g.IndexOf(id)
	if err != nil {
		return Node{}, err
	}

	return g.nodes[i], nil
}

// NodeAt returns the node stored at dense index i.
// It panics if i is out of range [0, Order()).
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of directed edges.
func (g *Graph) Size() int { return len(g.edges) }

// OutDegree returns the number of arcs leaving dense index i.
func (g *Graph) OutDegree(i int) int { return g.firstOut[i+1] - g.firstOut[i] }

// Nodes returns a copy of all nodes in input order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of all edges in input order, with resolved weights.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns a lazy sequence of (neighborID, weight) pairs for every edge
// whose source is id, in input edge-list order. A node without outgoing edges
// yields nothing.
//
// Errors:
//   - ErrUnknownNodeID: id is not in the graph.
//
// Complexity: O(1) to obtain; O(deg(id)) to drain.
func (g *Graph) Neighbors(id int64) (iter.Seq2[int64, float64], error) {
	u, err := g.IndexOf(id)
	if err != nil {
		return nil, err
	}

	return func(yield func(int64, float64) bool) {
		for k := g.firstOut[u]; k < g.firstOut[u+1]; k++ {
			if !yield(g.nodes[g.head[k]].ID, g.weight[k]) {
				return
			}
		}
	}, nil
}

// Arcs yields (target index, weight) for the arcs leaving dense index u, in
// input edge-list order. It is the index-level counterpart of Neighbors used
// by search algorithms that keep per-index scratch arrays.
func (g *Graph) Arcs(u int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for k := g.firstOut[u]; k < g.firstOut[u+1]; k++ {
			if !yield(g.head[k], g.weight[k]) {
				return
			}
		}
	}
}

// Bounds returns the lon/lat extent of all nodes; ok is false for an empty graph.
func (g *Graph) Bounds() (b Bounds, ok bool) {
	if len(g.nodes) == 0 {
		return Bounds{}, false
	}
	b = Bounds{
		MinLon: g.nodes[0].Lon, MaxLon: g.nodes[0].Lon,
		MinLat: g.nodes[0].Lat, MaxLat: g.nodes[0].Lat,
	}
	for _, n := range g.nodes[1:] {
		b.MinLon = math.Min(b.MinLon, n.Lon)
		b.MaxLon = math.Max(b.MaxLon, n.Lon)
		b.MinLat = math.Min(b.MinLat, n.Lat)
		b.MaxLat = math.Max(b.MaxLat, n.Lat)
	}

	return b, true
}

// Stats computes a summary of the graph. Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	for i := range g.nodes {
		d := g.OutDegree(i)
		if d == 0 {
			s.Sinks++
		}
		if d > s.MaxOut {
			s.MaxOut = d
		}
	}
	for _, w := range g.weight {
		if w > s.MaxWeight {
			s.MaxWeight = w
		}
	}

	return s
}
