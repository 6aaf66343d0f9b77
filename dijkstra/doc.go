// Package dijkstra provides the point-to-point shortest-path engine for
// roadpath graphs with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs a single-source Dijkstra search from start and stops as
//     soon as end is taken off the priority queue (early termination); the rest
//     of the graph is never explored.
//   - The path is rebuilt by walking predecessor links back from end and
//     reversing them into start→end order.
//   - The outcome is tri-state: Found, Unreachable or SameNode. An unreachable
//     target never masquerades as a one-element path.
//
// Tie-breaking and determinism:
//
//   - Relaxation uses a strict "<": a node keeps the first predecessor that
//     reached its final distance. Combined with the input edge-list order of
//     core.Graph arcs this makes equal-cost choices stable.
//   - Heap entries are ordered by (distance, push sequence), so equal keys are
//     popped first-in first-out. Repeated calls on the same graph return
//     identical paths.
//
// Scratch state:
//
//   - Distance, predecessor and visited arrays plus the heap live in a runner
//     owned by a single call and indexed by core dense indices. Nothing is kept
//     between calls, so one *core.Graph may serve concurrent queries.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) in the worst case, usually far less thanks to
//     early termination.
//   - Space: O(V + E); O(V) scratch arrays and up to O(E) heap entries under
//     the lazy decrease-key strategy (stale entries are skipped on pop).
//
// Options:
//
//   - WithMaxDistance(d):        do not settle nodes farther than d.
//   - WithInfEdgeThreshold(t):   treat arcs with weight ≥ t as impassable.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        the graph pointer is nil.
//   - core.ErrUnknownNodeID: start or end is missing (the message names which).
//   - ErrBrokenPath:      Weight was given a sequence that is not a path.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid option values (panic).
//
// Negative weights cannot reach the engine: core.Load rejects them with
// core.ErrNegativeWeight.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, 178263732, 11499354530)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Status == dijkstra.Unreachable {
//	    fmt.Println("no route")
//	}
package dijkstra
