package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/render"
)

// triangle builds 1(0,0) → 2(10,0) → 3(10,10) plus the shortcut 1 → 3,
// projected onto a 100×100 canvas (10 px per degree).
func triangle(t *testing.T) (*core.Graph, geo.Projection) {
	t.Helper()
	g, err := core.Load(
		[]core.Node{{ID: 1, Lon: 0, Lat: 0}, {ID: 2, Lon: 10, Lat: 0}, {ID: 3, Lon: 10, Lat: 10}},
		[]core.Edge{{From: 1, To: 2, Weight: 1}, {From: 2, To: 3, Weight: 1}, {From: 1, To: 3, Weight: 5}},
	)
	require.NoError(t, err)
	b, ok := g.Bounds()
	require.True(t, ok)

	return g, geo.NewProjection(b, 100, 100)
}

func TestToDOT_PinsAndHighlights(t *testing.T) {
	g, proj := triangle(t)
	dot := render.ToDOT(g, proj, []int64{1, 2, 3}, render.Options{})

	assert.True(t, strings.HasPrefix(dot, "digraph roads {\n"))
	assert.Contains(t, dot, "layout=neato;")
	// Graphviz y grows upwards, so lat 0 sits at y 0.
	assert.Contains(t, dot, `"1" [pos="0.00,0.00!", width=0.15, color="#2ca02c"];`)
	assert.Contains(t, dot, `"2" [pos="100.00,0.00!"];`)
	assert.Contains(t, dot, `"3" [pos="100.00,100.00!", width=0.15, color="#1f77b4"];`)

	assert.Contains(t, dot, `"1" -> "2" [color="#d62728", penwidth=2.5];`)
	assert.Contains(t, dot, `"2" -> "3" [color="#d62728", penwidth=2.5];`)
	assert.Contains(t, dot, "\"1\" -> \"3\";\n")
}

func TestToDOT_ScaleLabelsAndNoPath(t *testing.T) {
	g, proj := triangle(t)
	dot := render.ToDOT(g, proj, nil, render.Options{Scale: 0.5, ShowLabels: true})

	assert.Contains(t, dot, `"3" [pos="50.00,50.00!", xlabel="3", fontsize=6];`)
	assert.NotContains(t, dot, "penwidth=2.5")
	assert.Equal(t, dot, render.ToDOT(g, proj, nil, render.Options{Scale: 0.5, ShowLabels: true}))
}

func TestRenderSVG(t *testing.T) {
	g, proj := triangle(t)
	svg, err := render.RenderSVG(context.Background(), render.ToDOT(g, proj, []int64{1, 3}, render.Options{}))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestCanvas_PlotAndText(t *testing.T) {
	c := render.NewCanvas(5, 2)
	c.Plot(0, 0, 'x')
	c.Plot(9, 9, 'y') // ignored
	c.Plot(-1, 0, 'y')
	c.Text(2, 1, "abcdef")

	assert.Equal(t, "x    \n  abc", c.String())
	assert.Equal(t, 'x', c.At(0, 0))
	assert.Equal(t, render.GlyphEmpty, c.At(7, 7))

	c.Clear()
	assert.Equal(t, "     \n     ", c.String())
}

func TestCanvas_Line(t *testing.T) {
	c := render.NewCanvas(4, 4)
	c.Line(0, 0, 3, 3, '\\')
	c.Line(0, 3, 3, 3, '_')

	assert.Equal(t, "\\   \n \\  \n  \\ \n____", c.String())
}

func TestCanvas_LineIsSymmetric(t *testing.T) {
	a := render.NewCanvas(8, 5)
	a.Line(1, 0, 6, 4, '#')
	b := render.NewCanvas(8, 5)
	b.Line(6, 4, 1, 0, '#')

	// Both directions cover the same endpoints and the same number of cells.
	assert.Equal(t, '#', a.At(1, 0))
	assert.Equal(t, '#', a.At(6, 4))
	assert.Equal(t, strings.Count(a.String(), "#"), strings.Count(b.String(), "#"))
}

func TestCanvas_SegmentClipsFarEndpoints(t *testing.T) {
	c := render.NewCanvas(5, 3)
	c.Segment(-1e9, 1, 1e9, 1, '-')
	c.Segment(-10, -10, -5, -5, '!') // fully outside

	assert.Equal(t, "     \n-----\n     ", c.String())
}

func TestCanvas_ZeroSize(t *testing.T) {
	c := render.NewCanvas(-3, 0)
	c.Plot(0, 0, 'x')
	c.Line(0, 0, 2, 2, 'x')
	w, h := c.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Empty(t, c.String())
}

func TestView_CellPointRoundTrip(t *testing.T) {
	v := render.View{X: 10, Y: 20, Zoom: 2}
	cx, cy := v.Cell(15, 30)
	assert.Equal(t, 10.0, cx)
	assert.Equal(t, 10.0, cy)

	x, y := v.Point(10, 10)
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 30.0, y)
}

func TestDrawGraph(t *testing.T) {
	g, err := core.Load(
		[]core.Node{{ID: 1, Lon: 0, Lat: 0}, {ID: 2, Lon: 10, Lat: 0}, {ID: 3, Lon: 5, Lat: 0}},
		[]core.Edge{{From: 1, To: 2, Weight: 1}},
	)
	require.NoError(t, err)
	b, _ := g.Bounds()
	proj := geo.NewProjection(b, 10, 10)
	c := render.NewCanvas(11, 6)
	v := render.Fit(proj, 11, 6)
	require.Equal(t, 1.0, v.Zoom)

	render.DrawGraph(c, g, proj, v, nil)
	rows := strings.Split(c.String(), "\n")
	require.Len(t, rows, 6)
	assert.Equal(t, "o····o····o", rows[5])

	c.Clear()
	render.DrawGraph(c, g, proj, v, []int64{1, 2})
	rows = strings.Split(c.String(), "\n")
	assert.Equal(t, "S*********E", rows[5])
	assert.Equal(t, strings.Repeat(" ", 11), rows[0])
}
