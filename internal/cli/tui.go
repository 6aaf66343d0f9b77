package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/render"
)

const (
	headerLines = 2   // title and status rows above the map
	footerLines = 1   // help row below the map
	zoomStep    = 1.5 // zoom factor per +/- press
	maxZoomIn   = 4096
	maxZoomOut  = 8
	glyphCursor = '+'
)

// Map styles
var (
	mapEdgeStyle   = lipgloss.NewStyle().Foreground(colorDim)
	mapNodeStyle   = lipgloss.NewStyle().Foreground(colorGray)
	mapPathStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	mapStartStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	mapEndStyle    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	mapCursorStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// =============================================================================
// ExploreModel - Interactive map
// =============================================================================

// routeMsg carries the result of a query started by ExploreModel.query.
type routeMsg struct {
	seq int
	res dijkstra.Result
	err error
}

// ExploreModel is the bubbletea model for the interactive route explorer.
// The map area is width×height cells; view maps projected pixels onto it.
type ExploreModel struct {
	graph  *core.Graph
	proj   geo.Projection
	index  *geo.Index
	metric geo.Metric

	width, height int
	view          render.View
	fitZoom       float64
	fitted        bool

	cursorX, cursorY int

	start, end       int64
	hasStart, hasEnd bool

	seq     int // id of the latest query sent
	pending bool
	result  *dijkstra.Result
	err     error
}

// NewExploreModel creates an explorer for g drawn through proj.
func NewExploreModel(g *core.Graph, proj geo.Projection, metric geo.Metric) ExploreModel {
	m := ExploreModel{
		graph:  g,
		proj:   proj,
		index:  geo.NewIndex(geo.Points(g, proj)),
		metric: metric,
	}
	m.resize(80, 24)

	return m
}

// WithRoute preselects both endpoints; Init then runs the query.
func (m ExploreModel) WithRoute(start, end int64) ExploreModel {
	m.start, m.hasStart = start, true
	m.end, m.hasEnd = end, true
	m.seq++
	m.pending = true
	return m
}

func (m ExploreModel) Init() tea.Cmd {
	if !m.pending {
		return nil
	}
	return m.search()
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case routeMsg:
		if msg.seq != m.seq {
			return m, nil // superseded by a newer query
		}
		m.pending = false
		m.err = msg.err
		m.result = nil
		if msg.err == nil {
			res := msg.res
			m.result = &res
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "w":
			m.pan(0, -1)
		case "down", "s":
			m.pan(0, 1)
		case "left", "a":
			m.pan(-1, 0)
		case "right", "d":
			m.pan(1, 0)
		case "+", "=":
			m.zoom(zoomStep)
		case "-", "_":
			m.zoom(1 / zoomStep)
		case "h":
			m.moveCursor(-1, 0)
		case "j":
			m.moveCursor(0, 1)
		case "k":
			m.moveCursor(0, -1)
		case "l":
			m.moveCursor(1, 0)
		case "r":
			m.fit()
		case "c":
			m.hasStart, m.hasEnd = false, false
			m.result, m.err, m.pending = nil, nil, false
			m.seq++
		case "b":
			if id, ok := m.pick(); ok {
				m.start, m.hasStart = id, true
				cmd := m.query()
				return m, cmd
			}
		case "e", "enter":
			if id, ok := m.pick(); ok {
				m.end, m.hasEnd = id, true
				cmd := m.query()
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m ExploreModel) View() string {
	var b strings.Builder

	lon, lat := m.cursorLonLat()
	b.WriteString(StyleTitle.Render("roadpath explore"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes · %d edges · zoom %.2fx · cursor %.5f, %.5f",
		m.graph.Order(), m.graph.Size(), m.view.Zoom/m.fitZoom, lon, lat)))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(colorize(m.canvas()))
	b.WriteString("\n")

	b.WriteString(StyleDim.Render("←↑↓→/wasd pan  +/- zoom  hjkl cursor  b start  e/⏎ end  c clear  r reset  q quit"))

	return b.String()
}

// canvas draws the map area: the graph and route, the labelled endpoints
// and the cursor on top.
func (m ExploreModel) canvas() *render.Canvas {
	c := render.NewCanvas(m.width, m.height)
	var path []int64
	if m.result != nil {
		path = m.result.Path
	}
	render.DrawGraph(c, m.graph, m.proj, m.view, path)
	if m.hasStart {
		m.plotNode(c, m.start, render.GlyphStart)
	}
	if m.hasEnd {
		m.plotNode(c, m.end, render.GlyphEnd)
	}
	c.Plot(m.cursorX, m.cursorY, glyphCursor)

	return c
}

// cursorLonLat returns the geographic position under the cursor.
func (m ExploreModel) cursorLonLat() (lon, lat float64) {
	return m.proj.Unproject(m.view.Point(m.cursorX, m.cursorY))
}

// status describes the current endpoints and result in one line.
func (m ExploreModel) status() string {
	endpoint := func(label string, id int64, set bool) string {
		if !set {
			return StyleDim.Render(label + " –")
		}
		return StyleDim.Render(label+" ") + StyleNumber.Render(strconv.FormatInt(id, 10))
	}

	parts := []string{endpoint("start", m.start, m.hasStart), endpoint("end", m.end, m.hasEnd)}
	switch {
	case m.pending:
		parts = append(parts, StyleDim.Render("searching…"))
	case m.err != nil:
		parts = append(parts, styleIconError.Render(iconError+" "+m.err.Error()))
	case m.result != nil && m.result.Status == dijkstra.Unreachable:
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("no route (%d settled)", m.result.Settled)))
	case m.result != nil:
		parts = append(parts, styleIconSuccess.Render(iconSuccess)+" "+StyleValue.Render(fmt.Sprintf("%s · %d hops · %d settled",
			formatDistance(m.result.Distance, m.metric), m.result.Hops(), m.result.Settled)))
	}

	return strings.Join(parts, "  ")
}

// query starts a search for the current endpoints, or returns nil when one
// is missing. Only the result of the latest query is kept.
func (m *ExploreModel) query() tea.Cmd {
	if !m.hasStart || !m.hasEnd {
		return nil
	}
	m.seq++
	m.pending = true

	return m.search()
}

// search returns the command running the query stamped with the current seq.
func (m ExploreModel) search() tea.Cmd {
	seq, g, start, end := m.seq, m.graph, m.start, m.end
	return func() tea.Msg {
		res, err := dijkstra.ShortestPath(g, start, end)
		return routeMsg{seq: seq, res: res, err: err}
	}
}

// pick returns the node nearest the cursor.
func (m ExploreModel) pick() (int64, bool) {
	x, y := m.view.Point(m.cursorX, m.cursorY)
	p, ok := m.index.Nearest(x, y)
	return p.ID, ok
}

func (m *ExploreModel) resize(w, h int) {
	m.width = max(w, 1)
	m.height = max(h-headerLines-footerLines, 1)
	if !m.fitted {
		m.fit()
		m.fitted = true
	}
	m.moveCursor(0, 0)
}

// fit shows the whole graph and centres the cursor.
func (m *ExploreModel) fit() {
	m.view = render.Fit(m.proj, m.width, m.height)
	m.fitZoom = m.view.Zoom
	m.cursorX, m.cursorY = m.width/2, m.height/2
}

// pan moves the view by a quarter of the visible area per step.
func (m *ExploreModel) pan(dx, dy int) {
	m.view.X += float64(dx) * float64(m.width) / 4 / m.view.Zoom
	m.view.Y += float64(dy) * 2 * float64(m.height) / 4 / m.view.Zoom
}

// zoom scales the view by f around the centre of the map area.
func (m *ExploreModel) zoom(f float64) {
	cx, cy := m.width/2, m.height/2
	px, py := m.view.Point(cx, cy)

	z := m.view.Zoom * f
	z = min(z, m.fitZoom*maxZoomIn)
	z = max(z, m.fitZoom/maxZoomOut)
	m.view.Zoom = z
	m.view.X = px - float64(cx)/z
	m.view.Y = py - 2*float64(cy)/z
}

func (m *ExploreModel) moveCursor(dx, dy int) {
	m.cursorX = min(max(m.cursorX+dx, 0), m.width-1)
	m.cursorY = min(max(m.cursorY+dy, 0), m.height-1)
}

func (m ExploreModel) plotNode(c *render.Canvas, id int64, r rune) {
	n, err := m.graph.Node(id)
	if err != nil {
		return
	}
	x, y := m.view.Cell(m.proj.Project(n.Lon, n.Lat))
	col, row := int(math.Round(x)), int(math.Round(y))
	c.Plot(col, row, r)
	c.Text(col+1, row, strconv.FormatInt(id, 10))
}

// colorize renders the canvas with one style per glyph, grouping runs of
// equal glyphs into a single styled span.
func colorize(c *render.Canvas) string {
	w, h := c.Size()
	var b strings.Builder
	var run []rune
	flush := func() {
		if len(run) > 0 {
			b.WriteString(glyphStyle(run[0]).Render(string(run)))
			run = run[:0]
		}
	}

	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			r := c.At(x, y)
			if len(run) > 0 && run[0] != r {
				flush()
			}
			run = append(run, r)
		}
		flush()
	}

	return b.String()
}

func glyphStyle(r rune) lipgloss.Style {
	switch r {
	case render.GlyphEdge:
		return mapEdgeStyle
	case render.GlyphNode:
		return mapNodeStyle
	case render.GlyphPath:
		return mapPathStyle
	case render.GlyphStart:
		return mapStartStyle
	case render.GlyphEnd:
		return mapEndStyle
	case glyphCursor:
		return mapCursorStyle
	}
	return lipgloss.NewStyle()
}
