package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/render"
)

const (
	formatSVG = "svg" // Graphviz-rendered SVG
	formatDOT = "dot" // raw DOT source
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	start  int64   // route start; no route when neither flag nor config names one
	end    int64   // route end
	output string  // output file; "-" or empty writes to stdout
	format string  // svg or dot
	scale  float64 // points per projected pixel
	labels bool    // label every node with its ID
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, scale: 1}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the road network and a route to SVG or DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatSVG && opts.format != formatDOT {
				return fmt.Errorf("invalid format: %s (must be %s or %s)", opts.format, formatSVG, formatDOT)
			}
			return c.runRender(cmd, &opts)
		},
	}

	cmd.Flags().Int64Var(&opts.start, "start", 0, "route start node ID")
	cmd.Flags().Int64Var(&opts.end, "end", 0, "route end node ID")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "Graphviz points per canvas pixel")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label nodes with their IDs")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s, err := c.loadSession(ctx)
	if err != nil {
		return err
	}

	// A route is drawn only when some endpoint is configured.
	var path []int64
	startFlag, endFlag := nodeFlag(cmd, "start", opts.start), nodeFlag(cmd, "end", opts.end)
	if s.hasEndpoint(startFlag, endFlag) {
		start, end, err := s.endpoints(startFlag, endFlag)
		if err != nil {
			return err
		}
		res, err := dijkstra.ShortestPath(s.graph, start, end)
		if err != nil {
			return err
		}
		if !res.Reachable() {
			logger.Warn("no route, drawing the network only", "start", start, "end", end)
		}
		path = res.Path
		logger.Debug("route", "status", res.Status, "hops", res.Hops(), "distance", res.Distance)
	}

	dot := render.ToDOT(s.graph, s.projection(), path, render.Options{Scale: opts.scale, ShowLabels: opts.labels})
	data := []byte(dot)
	if opts.format == formatSVG {
		prog := newProgress(logger)
		if data, err = render.RenderSVG(ctx, dot); err != nil {
			return err
		}
		prog.done("Rendered SVG")
	}

	if opts.output == "" || opts.output == "-" {
		_, err := c.out.Write(data)
		return err
	}
	if err := writeFile(opts.output, data); err != nil {
		return err
	}
	printSuccess(c.out, "Rendered %s", opts.format)
	printFile(c.out, opts.output)

	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
