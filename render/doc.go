// Package render draws a road graph and a computed route.
//
// Two targets are supported:
//
//   - Graphviz: ToDOT emits a DOT document with every node pinned at its
//     projected position, and RenderSVG turns it into SVG with go-graphviz.
//   - Terminal: Canvas is a character raster, and DrawGraph paints the graph,
//     the route and its endpoints onto it through a pan/zoom View.
//
// Rendering never changes the graph and never feeds back into routing.
package render
