package geo

import (
	"math"

	"github.com/katalvlaran/roadpath/core"
)

// Locator finds the node nearest to a lon/lat position as measured by a
// metric. Under haversine the search plane shrinks longitude by the cosine
// of the graph's middle latitude; the 2-d tree then yields candidates
// within a radius that covers the plane's distortion, and the metric
// itself ranks them.
type Locator struct {
	g              *core.Graph
	dist           core.WeightFunc
	haversine      bool
	kx             float64 // x scale of the search plane
	minLat, maxLat float64
	index          *Index
}

// NewLocator indexes every node of g for nearest lookups under m.
func NewLocator(g *core.Graph, m Metric) (*Locator, error) {
	dist, err := m.WeightFunc()
	if err != nil {
		return nil, err
	}

	l := &Locator{g: g, dist: dist, kx: 1}
	if b, ok := g.Bounds(); ok && m == MetricHaversine {
		l.haversine = true
		l.minLat, l.maxLat = b.MinLat, b.MaxLat
		l.kx = math.Max(math.Cos(radians((b.MinLat+b.MaxLat)/2)), 1e-6)
	}

	pts := make([]Point, g.Order())
	for i := range pts {
		n := g.NodeAt(i)
		pts[i] = Point{ID: n.ID, X: n.Lon * l.kx, Y: n.Lat}
	}
	l.index = NewIndex(pts)

	return l, nil
}

// Nearest returns the node closest to (lon, lat) and its distance in the
// metric's unit. Equidistant nodes resolve to the lowest ID. ok is false
// when the graph has no nodes.
func (l *Locator) Nearest(lon, lat float64) (n core.Node, dist float64, ok bool) {
	if l.index.Len() == 0 {
		return core.Node{}, 0, false
	}
	q := core.Node{Lon: lon, Lat: lat}
	x, y := lon*l.kx, lat

	c, _ := l.index.Nearest(x, y)
	n, _ = l.g.Node(c.ID)
	dist = l.dist(q, n)

	d0 := math.Hypot(c.X-x, c.Y-y)
	if d0 == 0 {
		return n, dist, true
	}
	for _, p := range l.index.Within(x, y, d0*l.reach(lat)) {
		cand, _ := l.g.Node(p.ID)
		if d := l.dist(q, cand); d < dist || (d == dist && cand.ID < n.ID) {
			n, dist = cand, d
		}
	}

	return n, dist, true
}

// reach is the factor by which the plane distance to the first candidate is
// widened so that no node nearer under the metric is missed. It bounds the
// ratio between the plane's longitude scale and the true one anywhere
// between the graph and the query latitude.
func (l *Locator) reach(lat float64) float64 {
	if !l.haversine {
		return 1
	}
	lo, hi := math.Min(l.minLat, lat), math.Max(l.maxLat, lat)

	cosMin := math.Cos(radians(math.Max(math.Abs(lo), math.Abs(hi))))
	cosMax := 1.0
	switch {
	case lo > 0:
		cosMax = math.Cos(radians(lo))
	case hi < 0:
		cosMax = math.Cos(radians(-hi))
	}

	shrink := math.Min(1, cosMin/l.kx)
	if shrink <= 0 {
		return math.Inf(1)
	}
	grow := math.Max(1, cosMax/l.kx)

	// 2% covers a great circle bulging poleward past [lo, hi].
	return grow / shrink * 1.02
}
