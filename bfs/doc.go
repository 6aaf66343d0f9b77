// Package bfs walks a road graph breadth-first along its directed arcs,
// reporting which nodes a start node can reach and in how many hops.
//
// What
//
//   - Visits nodes in non-decreasing hop count from the start.
//   - Returns a Result holding:
//   - Order:  visit sequence
//   - Depth:  node ID → hops from start
//   - Parent: node ID → predecessor in the BFS tree
//   - Optional depth limit, visit hook and context cancellation.
//
// Why
//
//   - Road exports often contain one-way dead ends and unconnected islands.
//     Knowing how much of the network a node reaches explains an
//     "unreachable" route before any weighted search runs.
//
// Determinism
//
//	Arcs are followed in edge-list order, so Order is reproducible for a
//	given input.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
