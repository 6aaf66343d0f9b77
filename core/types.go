// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, Graph, LoadOption declarations and sentinel errors.
// Concurrency:
//   - Graph has no mutators after Load; concurrent reads need no locking.

package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrUnknownNodeID indicates a lookup of an ID that is not in the graph.
	ErrUnknownNodeID = errors.New("core: unknown node ID")

	// ErrDuplicateNodeID indicates two input nodes share the same ID.
	ErrDuplicateNodeID = errors.New("core: duplicate node ID")

	// ErrNegativeWeight indicates an edge with weight < 0.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or ±Inf.
	ErrBadWeight = errors.New("core: edge weight is not finite")
)

// Node is a road-network vertex.
//
// ID is assigned by the data source and must be unique within a Graph.
// Lon and Lat are kept exactly as provided; any display projection lives
// outside this package.
type Node struct {
	ID  int64
	Lon float64
	Lat float64
}

// Edge is a directed connection From→To with a non-negative Weight.
type Edge struct {
	From   int64
	To     int64
	Weight float64
}

// WeightFunc computes an edge weight from its endpoint nodes.
type WeightFunc func(from, to Node) float64

// Bounds is the axis-aligned lon/lat extent of a Graph.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Stats is a small summary of a Graph used for diagnostics.
type Stats struct {
	Nodes     int     // number of nodes
	Edges     int     // number of directed edges
	Sinks     int     // nodes without outgoing edges
	MaxOut    int     // largest out-degree
	MaxWeight float64 // heaviest edge weight
}

// Graph is an immutable directed, weighted graph keyed by external node IDs.
//
// Internally nodes are addressed by a dense index in [0, Order()). The arcs
// leaving node i occupy head[firstOut[i]:firstOut[i+1]] and the matching slice
// of weight, in input edge-list order.
type Graph struct {
	nodes []Node        // index → node, input order
	edges []Edge        // input order, weights resolved
	index map[int64]int // external ID → dense index

	firstOut []int     // len(nodes)+1 offsets into head/weight
	head     []int     // arc target index
	weight   []float64 // arc weight
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	weightFn WeightFunc
}

// WithWeightFunc makes Load compute every edge weight from its endpoint nodes,
// replacing the Weight carried by the input edges.
func WithWeightFunc(fn WeightFunc) LoadOption {
	return func(c *loadConfig) { c.weightFn = fn }
}
