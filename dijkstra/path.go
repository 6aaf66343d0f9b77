package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadpath/core"
)

// Weight returns the total weight of path in g. Each consecutive pair must be
// joined by an edge; with parallel edges the lightest one counts.
//
// Errors:
//   - ErrNilGraph:           g is nil.
//   - core.ErrUnknownNodeID: a path element is not in g.
//   - ErrBrokenPath:         path is empty or a hop has no edge.
//
// Complexity: O(Σ deg(pathᵢ)).
func Weight(g *core.Graph, path []int64) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBrokenPath)
	}

	u, err := g.IndexOf(path[0])
	if err != nil {
		return 0, err
	}
	var total float64
	for i := 1; i < len(path); i++ {
		v, err := g.IndexOf(path[i])
		if err != nil {
			return 0, err
		}
		best := math.Inf(1)
		for to, w := range g.Arcs(u) {
			if to == v && w < best {
				best = w
			}
		}
		if math.IsInf(best, 1) {
			return 0, fmt.Errorf("%w: no edge %d→%d at hop %d", ErrBrokenPath, path[i-1], path[i], i)
		}
		total += best
		u = v
	}

	return total, nil
}
