package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/config"
	"github.com/katalvlaran/roadpath/core"
	"github.com/katalvlaran/roadpath/csvgraph"
	"github.com/katalvlaran/roadpath/geo"
)

// session is a loaded graph together with the settings it was loaded under.
type session struct {
	cfg    config.Config
	metric geo.Metric
	graph  *core.Graph
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then non-empty persistent flags.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, error) {
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	path := c.flags.config
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		logger.Debug("config loaded", "path", path)
	}

	if c.flags.nodes != "" {
		cfg.Data.Nodes = c.flags.nodes
	}
	if c.flags.edges != "" {
		cfg.Data.Edges = c.flags.edges
	}
	if c.flags.metric != "" {
		cfg.Data.Metric = c.flags.metric
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// loadSession resolves the configuration and loads the graph it names.
func (c *CLI) loadSession(ctx context.Context) (*session, error) {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	metric, err := cfg.Metric()
	if err != nil {
		return nil, err
	}
	weight, err := metric.WeightFunc()
	if err != nil {
		return nil, err
	}

	logger.Debug("loading graph", "nodes", cfg.Data.Nodes, "edges", cfg.Data.Edges, "metric", metric)
	prog := newProgress(logger)
	g, err := csvgraph.LoadFiles(cfg.Data.Nodes, cfg.Data.Edges, core.WithWeightFunc(weight))
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d nodes, %d edges", g.Order(), g.Size()))

	return &session{cfg: cfg, metric: metric, graph: g}, nil
}

// errNoEndpoint is returned when a command needs a route endpoint that is
// set neither by flag nor by config.
var errNoEndpoint = errors.New("route endpoint not set")

// endpoints picks start and end from flags, falling back to [route] in the
// config. A nil argument means the flag was not given.
func (s *session) endpoints(start, end *int64) (int64, int64, error) {
	if start == nil {
		start = s.cfg.Route.Start
	}
	if end == nil {
		end = s.cfg.Route.End
	}
	if start == nil {
		return 0, 0, fmt.Errorf("%w: use --start or [route] start", errNoEndpoint)
	}
	if end == nil {
		return 0, 0, fmt.Errorf("%w: use --end or [route] end", errNoEndpoint)
	}

	return *start, *end, nil
}

// hasEndpoint reports whether a flag or the config names any endpoint.
func (s *session) hasEndpoint(start, end *int64) bool {
	return start != nil || end != nil || s.cfg.Route.Start != nil || s.cfg.Route.End != nil
}

// nodeFlag returns &id when the named flag was given on the command line,
// nil otherwise.
func nodeFlag(cmd *cobra.Command, name string, id int64) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &id
}

// projection fits the graph into the configured canvas.
func (s *session) projection() geo.Projection {
	b, _ := s.graph.Bounds()
	return geo.NewProjection(b, float64(s.cfg.Canvas.Width), float64(s.cfg.Canvas.Height))
}
