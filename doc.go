// Package roadpath finds shortest routes on road networks.
//
// What is roadpath?
//
//	A road network is a set of intersections (nodes with lon/lat) joined by
//	directed road segments (edges). roadpath loads such a network once and
//	answers point-to-point shortest-route queries on it:
//		• core/      – immutable Graph: ID index, CSR adjacency, validation
//		• dijkstra/  – single-pair shortest path with early exit and a
//		               found / unreachable / same-node result
//		• bfs/       – hop-count reachability, for diagnosing islands
//		• geo/       – haversine and planar metrics, display projection,
//		               nearest-node k-d tree
//		• csvgraph/  – nodes.csv / edges.csv loading
//		• config/    – TOML settings
//		• render/    – Graphviz DOT/SVG output and a terminal raster
//
// Commands
//
//	cmd/roadpath wires the packages into a CLI: route, render, explore
//	(an interactive terminal map), serve (HTTP) and stats.
//
// Quick start
//
//	g, err := csvgraph.LoadFiles("nodes.csv", "edges.csv",
//		core.WithWeightFunc(geo.Haversine))
//	if err != nil { ... }
//	res, err := dijkstra.ShortestPath(g, 178263732, 11499354530)
//	if err != nil { ... }
//	fmt.Println(res.Status, res.Distance, res.Path)
//
// Guarantees
//
//   - Edge weights are finite and non-negative; Load rejects anything else.
//   - A loaded Graph is never mutated, so any number of goroutines may
//     query it at once. Each query owns its scratch state.
//   - Equal inputs give equal results, including among equal-weight routes.
package roadpath
