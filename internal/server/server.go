// Package server exposes the routing engine over HTTP.
//
// The graph is loaded once and shared read-only; every request runs its own
// search with private scratch state, so handlers need no locking.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/geo"
)

const shutdownTimeout = 5 * time.Second

// Server answers route, nearest-node and stats queries for one graph.
type Server struct {
	graph   *core.Graph
	metric  geo.Metric
	locator *geo.Locator
	logger  *log.Logger
	route   []dijkstra.Option
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMetric records which metric produced the edge weights; it is reported
// by /stats and used for /nearest distances.
func WithMetric(m geo.Metric) Option {
	return func(s *Server) { s.metric = m }
}

// WithRouteOptions applies engine options to every /route query.
func WithRouteOptions(opts ...dijkstra.Option) Option {
	return func(s *Server) { s.route = append(s.route, opts...) }
}

// New builds a Server for g and wires its routes. It fails only when the
// configured metric is unknown.
func New(g *core.Graph, opts ...Option) (*Server, error) {
	s := &Server{
		graph:  g,
		metric: geo.MetricHaversine,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loc, err := geo.NewLocator(g, s.metric)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	s.locator = loc

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/healthz", s.handleHealth)
	r.Get("/route", s.handleRoute)
	r.Get("/nearest", s.handleNearest)
	r.Get("/stats", s.handleStats)
	s.router = r

	return s, nil
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr, "nodes", s.graph.Order(), "edges", s.graph.Size())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// logRequests logs one line per request once it completes.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", time.Since(start).Round(time.Microsecond),
		)
	})
}
