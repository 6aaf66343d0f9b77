// Package geo holds the spatial helpers that sit around the shortest-path
// engine: edge-weight metrics computed from lon/lat, the display projection
// used by renderers, and a static 2-d tree for nearest-node picking.
//
// Metrics:
//
//	Haversine - great-circle distance in metres; the default edge weight.
//	Planar    - Euclidean distance in raw degrees.
//
// Both are exposed as core.WeightFunc values so weights are fixed once at
// load time and never depend on the screen layout.
//
// Projection maps lon/lat into a canvas of a given size, preserving aspect
// ratio (one scale for both axes) and flipping the latitude axis so north is
// up. Index answers "which node is closest to this canvas point" in
// O(log V) expected time. Locator answers the same question for a lon/lat
// position under a metric, so the node it returns is nearest on the ground.
package geo
