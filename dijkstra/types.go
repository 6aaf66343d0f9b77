// Package dijkstra defines result types and configuration options for the
// shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBrokenPath indicates a node sequence with a hop that is not an edge of the graph.
	ErrBrokenPath = errors.New("dijkstra: sequence is not a path in the graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a negative value or NaN,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Status classifies the outcome of a ShortestPath query.
type Status int

const (
	// Found means a path from start to a different end node exists.
	Found Status = iota

	// Unreachable means end cannot be reached from start.
	Unreachable

	// SameNode means start and end are the same node; the path is [start].
	SameNode
)

// String returns the lower-case name used in logs and JSON.
func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case Unreachable:
		return "unreachable"
	case SameNode:
		return "same-node"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result is the outcome of one ShortestPath call. It is owned by the caller;
// the engine keeps no reference to it.
//
// Path     – node IDs from start to end inclusive; nil when Unreachable.
// Distance – total weight of Path; +Inf when Unreachable, 0 for SameNode.
// Settled  – number of nodes finalized before the search stopped.
type Result struct {
	Status   Status
	Path     []int64
	Distance float64
	Settled  int
}

// Reachable reports whether Path is a valid route (Found or SameNode).
func (r Result) Reachable() bool { return r.Status != Unreachable }

// Hops returns the number of edges on the path (0 for SameNode and Unreachable).
func (r Result) Hops() int {
	if len(r.Path) < 2 {
		return 0
	}

	return len(r.Path) - 1
}

// Options configures the behavior of ShortestPath.
//
// MaxDistance      – nodes whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat arcs with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which arcs are non-traversable
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold. A target farther than max
// is reported as Unreachable.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which arcs are
// skipped entirely (treated as closed roads).
// Zero, negative or NaN values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable arcs.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
