// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate input checking, the tri-state result, early termination,
// tie-breaking, options, and minimality against a brute-force reference.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
)

// Node IDs of the square fixture.
const (
	A int64 = 100
	B int64 = 200
	C int64 = 300
	D int64 = 400
	E int64 = 500
)

// buildSquare constructs:
//
//	D(0,4) ──3──▶ C(3,4)
//	  ▲             ▲
//	  4             4
//	  │             │
//	A(0,0) ──3──▶ B(3,0)        E(9,9) isolated
//
// Edge order: A→B, B→C, A→D, D→C.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	nodes := []core.Node{
		{ID: A, Lon: 0, Lat: 0},
		{ID: B, Lon: 3, Lat: 0},
		{ID: C, Lon: 3, Lat: 4},
		{ID: D, Lon: 0, Lat: 4},
		{ID: E, Lon: 9, Lat: 9},
	}
	edges := []core.Edge{
		{From: A, To: B, Weight: 3},
		{From: B, To: C, Weight: 4},
		{From: A, To: D, Weight: 4},
		{From: D, To: C, Weight: 3},
	}
	g, err := core.Load(nodes, edges)
	require.NoError(t, err)

	return g
}

// buildChain constructs 0→1→…→n-1 with unit weights.
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	nodes := make([]core.Node, n)
	edges := make([]core.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		nodes[i] = core.Node{ID: int64(i), Lon: float64(i)}
		if i > 0 {
			edges = append(edges, core.Edge{From: int64(i - 1), To: int64(i), Weight: 1})
		}
	}
	g, err := core.Load(nodes, edges)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, A, B)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_UnknownEndpointNamesWhich(t *testing.T) {
	g := buildSquare(t)

	_, err := dijkstra.ShortestPath(g, 1, C)
	require.ErrorIs(t, err, core.ErrUnknownNodeID)
	assert.Contains(t, err.Error(), "start")

	_, err = dijkstra.ShortestPath(g, A, 2)
	require.ErrorIs(t, err, core.ErrUnknownNodeID)
	assert.Contains(t, err.Error(), "end")
}

func TestShortestPath_UnknownEndpointLeavesGraphUsable(t *testing.T) {
	g := buildSquare(t)

	_, err := dijkstra.ShortestPath(g, A, 2)
	require.Error(t, err)

	res, err := dijkstra.ShortestPath(g, A, C)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Found, res.Status)
}

// ------------------------------------------------------------------------
// 2. Tri-state result
// ------------------------------------------------------------------------

func TestShortestPath_SquareTieKeepsFirstDiscovered(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.ShortestPath(g, A, C)
	require.NoError(t, err)

	// B settles at 3 before D at 4, so C is first reached through B (7).
	// D→C also yields 7 but is rejected by the strict "<".
	assert.Equal(t, dijkstra.Found, res.Status)
	assert.Equal(t, []int64{A, B, C}, res.Path)
	assert.Equal(t, 7.0, res.Distance)
	assert.Equal(t, 2, res.Hops())
}

func TestShortestPath_SameNode(t *testing.T) {
	g := buildSquare(t)

	for _, id := range []int64{A, C, E} {
		res, err := dijkstra.ShortestPath(g, id, id)
		require.NoError(t, err)
		assert.Equal(t, dijkstra.SameNode, res.Status)
		assert.Equal(t, []int64{id}, res.Path)
		assert.Zero(t, res.Distance)
		assert.True(t, res.Reachable())
		assert.Zero(t, res.Hops())
	}
}

func TestShortestPath_DisconnectedIsUnreachable(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.ShortestPath(g, A, E)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, res.Status)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Distance, 1))
	assert.False(t, res.Reachable())
	// Every node reachable from A was settled before giving up.
	assert.Equal(t, 4, res.Settled)
}

func TestShortestPath_RespectsDirection(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.ShortestPath(g, C, A)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, res.Status)
}

// ------------------------------------------------------------------------
// 3. Early termination
// ------------------------------------------------------------------------

func TestShortestPath_StopsWhenTargetDequeued(t *testing.T) {
	g := buildChain(t, 100)

	res, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, res.Path)
	assert.Equal(t, 3.0, res.Distance)
	// Only 0, 1 and 2 are finalized; the target itself ends the loop.
	assert.Equal(t, 3, res.Settled)
}

// ------------------------------------------------------------------------
// 4. Tie-breaking follows edge-list order
// ------------------------------------------------------------------------

func TestShortestPath_EdgeOrderPinsTie(t *testing.T) {
	nodes := []core.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	viaTwo := []core.Edge{
		{From: 1, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 4, Weight: 1},
		{From: 3, To: 4, Weight: 1},
	}
	viaThree := []core.Edge{viaTwo[1], viaTwo[0], viaTwo[2], viaTwo[3]}

	cases := []struct {
		name  string
		edges []core.Edge
		want  []int64
	}{
		{"1→2 listed first", viaTwo, []int64{1, 2, 4}},
		{"1→3 listed first", viaThree, []int64{1, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.Load(nodes, tc.edges)
			require.NoError(t, err)

			res, err := dijkstra.ShortestPath(g, 1, 4)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Path)
			assert.Equal(t, 2.0, res.Distance)
		})
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := randomGraph(t, 7, 60, 400, 3)

	first, err := dijkstra.ShortestPath(g, 0, 59)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.ShortestPath(g, 0, 59)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestShortestPath_IdempotentUnderReload(t *testing.T) {
	g1 := randomGraph(t, 11, 40, 200, 2)
	g2 := randomGraph(t, 11, 40, 200, 2)

	for s := int64(0); s < 40; s += 3 {
		for e := int64(0); e < 40; e += 5 {
			r1, err := dijkstra.ShortestPath(g1, s, e)
			require.NoError(t, err)
			r2, err := dijkstra.ShortestPath(g2, s, e)
			require.NoError(t, err)
			assert.Equal(t, r1, r2, "query %d→%d", s, e)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Options
// ------------------------------------------------------------------------

func TestShortestPath_MaxDistance(t *testing.T) {
	g := buildSquare(t)

	res, err := dijkstra.ShortestPath(g, A, C, dijkstra.WithMaxDistance(6))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, res.Status)

	res, err = dijkstra.ShortestPath(g, A, C, dijkstra.WithMaxDistance(7))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Found, res.Status)
	assert.Equal(t, 7.0, res.Distance)
}

func TestShortestPath_InfEdgeThreshold(t *testing.T) {
	g := buildSquare(t)

	// B→C(4) and A→D(4) are closed: C cannot be reached.
	res, err := dijkstra.ShortestPath(g, A, C, dijkstra.WithInfEdgeThreshold(4))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, res.Status)

	res, err = dijkstra.ShortestPath(g, A, C, dijkstra.WithInfEdgeThreshold(4.5))
	require.NoError(t, err)
	assert.Equal(t, []int64{A, B, C}, res.Path)
}

func TestOptions_InvalidValuesPanic(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{})
	})
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() {
		dijkstra.WithInfEdgeThreshold(math.NaN())(&dijkstra.Options{})
	})
}

// ------------------------------------------------------------------------
// 6. Zero weights and self-loops
// ------------------------------------------------------------------------

func TestShortestPath_ZeroWeightsAndLoops(t *testing.T) {
	nodes := []core.Node{{ID: 1}, {ID: 2}, {ID: 3}}
	edges := []core.Edge{
		{From: 1, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
		{From: 2, To: 1, Weight: 0},
		{From: 2, To: 3, Weight: 0},
	}
	g, err := core.Load(nodes, edges)
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, res.Path)
	assert.Zero(t, res.Distance)
}

// ------------------------------------------------------------------------
// 7. Status helpers
// ------------------------------------------------------------------------

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "found", dijkstra.Found.String())
	assert.Equal(t, "unreachable", dijkstra.Unreachable.String())
	assert.Equal(t, "same-node", dijkstra.SameNode.String())
	assert.Equal(t, "status(9)", dijkstra.Status(9).String())

	b, err := dijkstra.Unreachable.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "unreachable", string(b))
}
