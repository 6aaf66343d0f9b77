// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for roadpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.

package core_test

import (
	"iter"
	"testing"

	"github.com/katalvlaran/roadpath/core"
)

// Common node IDs used across core tests.
const (
	NodeA int64 = 1
	NodeB int64 = 2
	NodeC int64 = 3
	NodeD int64 = 4
	NodeE int64 = 5

	NodeMissing int64 = 999
)

// squareNodes returns the unit-square fixture:
//
//	D(0,4) ── C(3,4)
//	  │         │
//	A(0,0) ── B(3,0)      plus an isolated E(10,10).
func squareNodes() []core.Node {
	return []core.Node{
		{ID: NodeA, Lon: 0, Lat: 0},
		{ID: NodeB, Lon: 3, Lat: 0},
		{ID: NodeC, Lon: 3, Lat: 4},
		{ID: NodeD, Lon: 0, Lat: 4},
		{ID: NodeE, Lon: 10, Lat: 10},
	}
}

// squareEdges returns A→B(3), B→C(4), A→D(4), D→C(3) in that order.
func squareEdges() []core.Edge {
	return []core.Edge{
		{From: NodeA, To: NodeB, Weight: 3},
		{From: NodeB, To: NodeC, Weight: 4},
		{From: NodeA, To: NodeD, Weight: 4},
		{From: NodeD, To: NodeC, Weight: 3},
	}
}

// mustSquare loads the square fixture or fails the test.
func mustSquare(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Load(squareNodes(), squareEdges())
	if err != nil {
		t.Fatalf("Load(square): %v", err)
	}

	return g
}

// arc is a drained (target, weight) pair.
type arc struct {
	To     int64
	Weight float64
}

// drain collects a Neighbors sequence into a slice.
func drain(seq iter.Seq2[int64, float64]) []arc {
	var out []arc
	for to, w := range seq {
		out = append(out, arc{To: to, Weight: w})
	}

	return out
}
