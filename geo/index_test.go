package geo_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/geo"
)

// bruteNearest is the linear scan the index replaces.
func bruteNearest(pts []geo.Point, x, y float64) geo.Point {
	best, bestD := pts[0], -1.0
	for _, p := range pts {
		d := (p.X-x)*(p.X-x) + (p.Y-y)*(p.Y-y)
		if bestD < 0 || d < bestD || (d == bestD && p.ID < best.ID) {
			best, bestD = p, d
		}
	}

	return best
}

func TestIndex_Empty(t *testing.T) {
	ix := geo.NewIndex(nil)
	_, ok := ix.Nearest(1, 1)
	assert.False(t, ok)
	assert.Zero(t, ix.Len())
}

func TestIndex_Single(t *testing.T) {
	ix := geo.NewIndex([]geo.Point{{ID: 42, X: 3, Y: 4}})
	p, ok := ix.Nearest(-100, 100)
	require.True(t, ok)
	assert.Equal(t, int64(42), p.ID)
}

func TestIndex_TieResolvesToLowestID(t *testing.T) {
	pts := []geo.Point{{ID: 9, X: 1, Y: 0}, {ID: 3, X: -1, Y: 0}, {ID: 5, X: 0, Y: 1}}
	p, ok := geo.NewIndex(pts).Nearest(0, 0)
	require.True(t, ok)
	assert.Equal(t, int64(3), p.ID)
}

func TestIndex_DoesNotModifyInput(t *testing.T) {
	pts := []geo.Point{{ID: 3, X: 9}, {ID: 1, X: 1}, {ID: 2, X: 5}}
	orig := append([]geo.Point(nil), pts...)
	geo.NewIndex(pts)
	assert.Equal(t, orig, pts)
}

func TestIndex_MatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	pts := make([]geo.Point, 500)
	for i := range pts {
		// A coarse grid produces many duplicate coordinates.
		pts[i] = geo.Point{ID: int64(i), X: float64(r.Intn(60)), Y: float64(r.Intn(40))}
	}
	ix := geo.NewIndex(pts)
	require.Equal(t, len(pts), ix.Len())

	for i := 0; i < 300; i++ {
		x, y := r.Float64()*70-5, r.Float64()*50-5
		got, ok := ix.Nearest(x, y)
		require.True(t, ok)
		assert.Equal(t, bruteNearest(pts, x, y), got, "query (%.2f, %.2f)", x, y)
	}
}

func TestIndex_WithinMatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	pts := make([]geo.Point, 300)
	for i := range pts {
		pts[i] = geo.Point{ID: int64(i), X: float64(r.Intn(50)), Y: float64(r.Intn(50))}
	}
	ix := geo.NewIndex(pts)

	for i := 0; i < 100; i++ {
		x, y, rad := r.Float64()*50, r.Float64()*50, r.Float64()*10
		var want []int64
		for _, p := range pts {
			if (p.X-x)*(p.X-x)+(p.Y-y)*(p.Y-y) <= rad*rad {
				want = append(want, p.ID)
			}
		}
		var got []int64
		for _, p := range ix.Within(x, y, rad) {
			got = append(got, p.ID)
		}
		assert.ElementsMatch(t, want, got, "query (%.2f, %.2f) r=%.2f", x, y, rad)
	}

	assert.Len(t, ix.Within(0, 0, math.Inf(1)), len(pts))
	assert.Empty(t, geo.NewIndex(nil).Within(0, 0, 1))
}
