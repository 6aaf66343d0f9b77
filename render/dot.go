package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/geo"
)

// DOT colours.
const (
	colorEdge  = "#b0b0b0"
	colorPath  = "#d62728"
	colorNode  = "#404040"
	colorStart = "#2ca02c"
	colorEnd   = "#1f77b4"
)

// Options configures DOT output.
type Options struct {
	// Scale converts projected pixels to Graphviz points. Zero means 1.
	Scale float64
	// ShowLabels attaches the node ID as an external label.
	ShowLabels bool
}

// ToDOT converts g to Graphviz DOT. Nodes are pinned at their projected
// positions (pos="x,y!"), so the neato engine keeps the map geometry.
// Consecutive pairs of path are highlighted; its first and last nodes are
// coloured as start and end. An empty path draws the bare graph.
//
// Output order follows g's node and edge order, so equal inputs give
// byte-identical documents.
func ToDOT(g *core.Graph, proj geo.Projection, path []int64, opts Options) string {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	_, height := proj.Size()

	onPath := make(map[[2]int64]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]int64{path[i-1], path[i]}] = true
	}
	var start, end int64
	hasEnds := len(path) > 0
	if hasEnds {
		start, end = path[0], path[len(path)-1]
	}

	var buf bytes.Buffer
	buf.WriteString("digraph roads {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	fmt.Fprintf(&buf, "  node [shape=point, width=0.04, color=%q];\n", colorNode)
	fmt.Fprintf(&buf, "  edge [arrowsize=0.3, penwidth=0.5, color=%q];\n", colorEdge)
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		x, y := proj.Project(n.Lon, n.Lat)
		// Graphviz puts the origin bottom-left; the projection is top-left.
		attrs := fmt.Sprintf("pos=\"%.2f,%.2f!\"", x*scale, (height-y)*scale)
		if opts.ShowLabels {
			attrs += fmt.Sprintf(", xlabel=\"%d\", fontsize=6", n.ID)
		}
		switch {
		case hasEnds && n.ID == start:
			attrs += fmt.Sprintf(", width=0.15, color=%q", colorStart)
		case hasEnds && n.ID == end:
			attrs += fmt.Sprintf(", width=0.15, color=%q", colorEnd)
		}
		fmt.Fprintf(&buf, "  \"%d\" [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if onPath[[2]int64{e.From, e.To}] {
			fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [color=%q, penwidth=2.5];\n", e.From, e.To, colorPath)
			continue
		}
		fmt.Fprintf(&buf, "  \"%d\" -> \"%d\";\n", e.From, e.To)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders a DOT document to SVG with the neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
