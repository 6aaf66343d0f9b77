package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/dijkstra"
	"github.com/katalvlaran/roadpath/geo"
	"github.com/katalvlaran/roadpath/internal/server"
)

// maxPathPreview is the number of path nodes shown before eliding the middle.
const maxPathPreview = 12

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	start   int64   // start node ID; [route] start when not given
	end     int64   // end node ID; [route] end when not given
	json    bool    // print the result as JSON
	maxDist float64 // give up beyond this distance (0: unlimited)
}

func (c *CLI) routeCommand() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the shortest route between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(cmd, &opts)
		},
	}

	cmd.Flags().Int64Var(&opts.start, "start", 0, "start node ID")
	cmd.Flags().Int64Var(&opts.end, "end", 0, "end node ID")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.Flags().Float64Var(&opts.maxDist, "max", 0, "stop searching beyond this distance (0 = unlimited)")

	return cmd
}

func (c *CLI) runRoute(cmd *cobra.Command, opts *routeOpts) error {
	if opts.maxDist < 0 {
		return fmt.Errorf("--max must be non-negative, got %g", opts.maxDist)
	}

	s, err := c.loadSession(cmd.Context())
	if err != nil {
		return err
	}
	start, end, err := s.endpoints(nodeFlag(cmd, "start", opts.start), nodeFlag(cmd, "end", opts.end))
	if err != nil {
		return err
	}

	var engineOpts []dijkstra.Option
	if opts.maxDist > 0 {
		engineOpts = append(engineOpts, dijkstra.WithMaxDistance(opts.maxDist))
	}

	prog := newProgress(loggerFromContext(cmd.Context()))
	res, err := dijkstra.ShortestPath(s.graph, start, end, engineOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Settled %d nodes", res.Settled))

	if opts.json {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewRouteResponse(res, s.metric.Unit()))
	}
	printRoute(c.out, start, end, res, s.metric)

	return nil
}

// printRoute prints a styled summary of res.
func printRoute(w io.Writer, start, end int64, res dijkstra.Result, m geo.Metric) {
	switch res.Status {
	case dijkstra.SameNode:
		printInfo(w, "Start and end are the same node %s", StyleNumber.Render(strconv.FormatInt(start, 10)))
		return
	case dijkstra.Unreachable:
		printWarning(w, "No route from %d to %d", start, end)
		printKeyValue(w, "settled", strconv.Itoa(res.Settled))
		return
	}

	printSuccess(w, "Route %s %s %s",
		StyleNumber.Render(strconv.FormatInt(start, 10)), iconArrow, StyleNumber.Render(strconv.FormatInt(end, 10)))
	printKeyValue(w, "distance", formatDistance(res.Distance, m))
	printKeyValue(w, "hops", strconv.Itoa(res.Hops()))
	printKeyValue(w, "settled", strconv.Itoa(res.Settled))
	printKeyValue(w, "path", formatPath(res.Path))
}

// formatDistance renders d in the metric's unit, switching metres to
// kilometres for long routes.
func formatDistance(d float64, m geo.Metric) string {
	if m == geo.MetricHaversine && d >= 1000 {
		return fmt.Sprintf("%.2f km", d/1000)
	}
	if m == geo.MetricHaversine {
		return fmt.Sprintf("%.1f m", d)
	}

	return fmt.Sprintf("%.6f%s", d, m.Unit())
}

// formatPath joins node IDs with arrows, eliding the middle of long paths.
func formatPath(path []int64) string {
	ids := make([]string, 0, min(len(path), maxPathPreview+1))
	if len(path) <= maxPathPreview {
		for _, id := range path {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		return strings.Join(ids, " "+iconArrow+" ")
	}

	half := maxPathPreview / 2
	for _, id := range path[:half] {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	ids = append(ids, fmt.Sprintf("… %d more …", len(path)-maxPathPreview))
	for _, id := range path[len(path)-half:] {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	return strings.Join(ids, " "+iconArrow+" ")
}
