package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/katalvlaran/roadpath/bfs"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/geo"
)

// RouteResponse is the body of GET /route.
// Distance is null when the target is unreachable.
type RouteResponse struct {
	Status   dijkstra.Status `json:"status"`
	Path     []int64         `json:"path"`
	Distance *float64        `json:"distance"`
	Unit     string          `json:"unit"`
	Settled  int             `json:"settled"`
}

// NewRouteResponse converts an engine result into its JSON form.
func NewRouteResponse(res dijkstra.Result, unit string) RouteResponse {
	resp := RouteResponse{
		Status:  res.Status,
		Path:    res.Path,
		Unit:    unit,
		Settled: res.Settled,
	}
	if resp.Path == nil {
		resp.Path = []int64{}
	}
	if res.Reachable() {
		d := res.Distance
		resp.Distance = &d
	}

	return resp
}

// NearestResponse is the body of GET /nearest.
type NearestResponse struct {
	ID       int64   `json:"id"`
	Lon      float64 `json:"lon"`
	Lat      float64 `json:"lat"`
	Distance float64 `json:"distance"`
	Unit     string  `json:"unit"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Nodes     int         `json:"nodes"`
	Edges     int         `json:"edges"`
	Sinks     int         `json:"sinks"`
	MaxOut    int         `json:"max_out"`
	MaxWeight float64     `json:"max_weight"`
	Metric    geo.Metric  `json:"metric"`
	Bounds    *BoundsJSON `json:"bounds,omitempty"`
	Reach     *ReachJSON  `json:"reach,omitempty"`
}

// ReachJSON reports what a node reaches along directed arcs.
type ReachJSON struct {
	From    int64 `json:"from"`
	Nodes   int   `json:"nodes"`
	MaxHops int   `json:"max_hops"`
}

// BoundsJSON is the bounding box of all node coordinates.
type BoundsJSON struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := strconv.ParseInt(q.Get("start"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("start: %q is not a node ID", q.Get("start")))
		return
	}
	end, err := strconv.ParseInt(q.Get("end"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("end: %q is not a node ID", q.Get("end")))
		return
	}

	opts := s.route
	if raw := q.Get("max"); raw != "" {
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(limit) || limit < 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("max: %q is not a non-negative number", raw))
			return
		}
		opts = append(opts[:len(opts):len(opts)], dijkstra.WithMaxDistance(limit))
	}

	res, err := dijkstra.ShortestPath(s.graph, start, end, opts...)
	switch {
	case errors.Is(err, core.ErrUnknownNodeID):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, NewRouteResponse(res, s.metric.Unit()))
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || math.IsNaN(lon) || math.IsInf(lon, 0) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("lon: %q is not a coordinate", q.Get("lon")))
		return
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || math.IsNaN(lat) || math.IsInf(lat, 0) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("lat: %q is not a coordinate", q.Get("lat")))
		return
	}
	n, dist, ok := s.locator.Nearest(lon, lat)
	if !ok {
		writeError(w, http.StatusNotFound, "graph has no nodes")
		return
	}

	writeJSON(w, http.StatusOK, NearestResponse{
		ID:       n.ID,
		Lon:      n.Lon,
		Lat:      n.Lat,
		Distance: dist,
		Unit:     s.metric.Unit(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	st := s.graph.Stats()
	resp := StatsResponse{
		Nodes:     st.Nodes,
		Edges:     st.Edges,
		Sinks:     st.Sinks,
		MaxOut:    st.MaxOut,
		MaxWeight: st.MaxWeight,
		Metric:    s.metric,
	}
	if b, ok := s.graph.Bounds(); ok {
		resp.Bounds = &BoundsJSON{MinLon: b.MinLon, MinLat: b.MinLat, MaxLon: b.MaxLon, MaxLat: b.MaxLat}
	}

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("from: %q is not a node ID", raw))
			return
		}
		res, err := bfs.Walk(s.graph, from, bfs.WithContext(r.Context()))
		switch {
		case errors.Is(err, core.ErrUnknownNodeID):
			writeError(w, http.StatusNotFound, err.Error())
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.Reach = &ReachJSON{From: from, Nodes: res.Reached(), MaxHops: res.MaxDepth()}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
