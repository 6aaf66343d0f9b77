package geo

import (
	"math"

	"github.com/katalvlaran/roadpath/core"
)

// Projection maps lon/lat onto a width×height canvas with the origin in the
// top-left corner. A single scale is used for both axes so shapes are not
// distorted; the larger extent fills its canvas dimension.
type Projection struct {
	minLon, minLat float64
	scale          float64
	width, height  float64
}

// NewProjection fits b into a width×height canvas. Degenerate bounds (a single
// point or a straight line) fall back to scale 1 on the empty axis.
func NewProjection(b core.Bounds, width, height float64) Projection {
	dLon := b.MaxLon - b.MinLon
	dLat := b.MaxLat - b.MinLat

	scale := math.Inf(1)
	if dLon > 0 {
		scale = width / dLon
	}
	if dLat > 0 {
		scale = math.Min(scale, height/dLat)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	return Projection{
		minLon: b.MinLon,
		minLat: b.MinLat,
		scale:  scale,
		width:  width,
		height: height,
	}
}

// Project converts lon/lat into canvas coordinates; y grows downwards.
func (p Projection) Project(lon, lat float64) (x, y float64) {
	x = (lon - p.minLon) * p.scale
	y = p.height - (lat-p.minLat)*p.scale

	return x, y
}

// Unproject converts canvas coordinates back into lon/lat.
func (p Projection) Unproject(x, y float64) (lon, lat float64) {
	lon = p.minLon + x/p.scale
	lat = p.minLat + (p.height-y)/p.scale

	return lon, lat
}

// Scale returns canvas units per degree.
func (p Projection) Scale() float64 { return p.scale }

// Size returns the canvas dimensions.
func (p Projection) Size() (width, height float64) { return p.width, p.height }

// Point is a node placed on the canvas.
type Point struct {
	ID   int64
	X, Y float64
}

// Points projects every node of g, in node order.
func Points(g *core.Graph, p Projection) []Point {
	out := make([]Point, g.Order())
	for i := range out {
		n := g.NodeAt(i)
		x, y := p.Project(n.Lon, n.Lat)
		out[i] = Point{ID: n.ID, X: x, Y: y}
	}

	return out
}
