package render

import (
	"math"
	"strings"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/geo"
)

// Glyphs painted by DrawGraph.
const (
	GlyphEmpty = ' '
	GlyphEdge  = '·'
	GlyphPath  = '*'
	GlyphNode  = 'o'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// Canvas is a fixed-size grid of runes. Writes outside the grid are ignored.
type Canvas struct {
	w, h  int
	cells []rune
}

// NewCanvas returns a blank w×h canvas. Negative sizes are treated as zero.
func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h, cells: make([]rune, w*h)}
	c.Clear()

	return c
}

// Size returns the canvas width and height in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// Clear fills the canvas with blanks.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = GlyphEmpty
	}
}

// At returns the rune at (x, y), or GlyphEmpty outside the grid.
func (c *Canvas) At(x, y int) rune {
	if !c.inside(x, y) {
		return GlyphEmpty
	}

	return c.cells[y*c.w+x]
}

// Plot sets the cell at (x, y).
func (c *Canvas) Plot(x, y int, r rune) {
	if c.inside(x, y) {
		c.cells[y*c.w+x] = r
	}
}

// Text writes s starting at (x, y), clipped to the grid.
func (c *Canvas) Text(x, y int, s string) {
	for _, r := range s {
		c.Plot(x, y, r)
		x++
	}
}

// Line draws a segment between two cells with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, r rune) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Plot(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Segment draws a line between two points in cell space, clipped to the
// grid first so that far-off endpoints cost nothing.
func (c *Canvas) Segment(x0, y0, x1, y1 float64, r rune) {
	x0, y0, x1, y1, ok := clip(x0, y0, x1, y1, -0.5, -0.5, float64(c.w)-0.5, float64(c.h)-0.5)
	if !ok {
		return
	}
	c.Line(round(x0), round(y0), round(x1), round(y1), r)
}

// String returns the rows joined by newlines, without a trailing newline.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(len(c.cells) + c.h)
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range c.cells[y*c.w : (y+1)*c.w] {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// View maps projected pixel coordinates onto canvas cells.
// X, Y is the projected point shown in the top-left cell; Zoom is cells per
// projected pixel horizontally. Terminal cells are about twice as tall as
// they are wide, so rows advance at half that rate.
type View struct {
	X, Y float64
	Zoom float64
}

// Cell returns the (fractional) cell for a projected point.
func (v View) Cell(x, y float64) (cx, cy float64) {
	return (x - v.X) * v.Zoom, (y - v.Y) * v.Zoom / 2
}

// Point returns the projected point at the centre of cell (cx, cy).
func (v View) Point(cx, cy int) (x, y float64) {
	return v.X + float64(cx)/v.Zoom, v.Y + 2*float64(cy)/v.Zoom
}

// Fit returns a view that shows the whole projection on a w×h canvas.
func Fit(proj geo.Projection, w, h int) View {
	pw, ph := proj.Size()
	if pw <= 0 || ph <= 0 || w < 2 || h < 2 {
		return View{Zoom: 1}
	}

	return View{Zoom: math.Min(float64(w-1)/pw, 2*float64(h-1)/ph)}
}

// DrawGraph paints edges, then path edges, then nodes, then the path
// endpoints. Later layers overwrite earlier ones.
func DrawGraph(c *Canvas, g *core.Graph, proj geo.Projection, v View, path []int64) {
	cell := func(n core.Node) (float64, float64) {
		return v.Cell(proj.Project(n.Lon, n.Lat))
	}

	for _, e := range g.Edges() {
		a, _ := g.Node(e.From)
		b, _ := g.Node(e.To)
		ax, ay := cell(a)
		bx, by := cell(b)
		c.Segment(ax, ay, bx, by, GlyphEdge)
	}

	pathNodes := make([]core.Node, 0, len(path))
	for _, id := range path {
		if n, err := g.Node(id); err == nil {
			pathNodes = append(pathNodes, n)
		}
	}
	for i := 1; i < len(pathNodes); i++ {
		ax, ay := cell(pathNodes[i-1])
		bx, by := cell(pathNodes[i])
		c.Segment(ax, ay, bx, by, GlyphPath)
	}

	for _, n := range g.Nodes() {
		x, y := cell(n)
		if c.At(round(x), round(y)) == GlyphPath {
			continue
		}
		c.Plot(round(x), round(y), GlyphNode)
	}

	if len(pathNodes) > 0 {
		x, y := cell(pathNodes[0])
		c.Plot(round(x), round(y), GlyphStart)
		x, y = cell(pathNodes[len(pathNodes)-1])
		if len(pathNodes) > 1 {
			c.Plot(round(x), round(y), GlyphEnd)
		}
	}
}

// clip is Liang–Barsky clipping of a segment against a rectangle.
func clip(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0
	for _, pq := range [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	} {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, t)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func round(f float64) int { return int(math.Round(f)) }

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
