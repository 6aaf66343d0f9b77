// Package core provides the static, read-only road-network Graph used by the
// shortest-path engine.
//
// A Graph G = (V,E) is built exactly once from a node list and a directed,
// weighted edge list:
//
//   - Nodes carry a caller-assigned int64 ID and geographic coordinates (Lon, Lat).
//   - Edges are directed From→To and carry a non-negative float64 Weight.
//   - The external ID → dense index mapping is built once by Load and reused
//     by every query (no per-query rebuilding).
//   - Outgoing arcs are stored in compressed sparse row (CSR) form; the arcs of
//     a node are kept in the order the edges appeared in the input list, which
//     keeps tie-breaking in the engine deterministic.
//
// Why a load-once Graph?
//
//   - The road network does not change during a session, so there is no
//     insertion or deletion API and no locking: a *Graph may be shared freely
//     between goroutines that only read it.
//   - All invariants the engine depends on (unique IDs, known endpoints,
//     finite non-negative weights) are checked at construction time.
//
// Construction:
//
//	g, err := core.Load(nodes, edges, core.WithWeightFunc(metric))
//
// Errors (sentinel, wrapped with context via %w):
//
//	ErrUnknownNodeID    - an ID lookup missed, or an edge references a missing node.
//	ErrDuplicateNodeID  - two input nodes share the same ID.
//	ErrNegativeWeight   - an edge weight is below zero.
//	ErrBadWeight        - an edge weight is NaN or infinite.
//
// Complexity:
//
//	Load:      O(V + E) time, O(V + E) space.
//	Contains:  O(1).
//	Neighbors: O(1) to obtain, O(deg(v)) to drain.
package core
