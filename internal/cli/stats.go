package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/bfs"
)

func (c *CLI) statsCommand() *cobra.Command {
	var from int64

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and coordinate statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.loadSession(cmd.Context())
			if err != nil {
				return err
			}

			st := s.graph.Stats()
			fmt.Fprintln(c.out, StyleTitle.Render("Road network"))
			printKeyValue(c.out, "nodes", strconv.Itoa(st.Nodes))
			printKeyValue(c.out, "edges", strconv.Itoa(st.Edges))
			printKeyValue(c.out, "sinks", strconv.Itoa(st.Sinks))
			printKeyValue(c.out, "max out", strconv.Itoa(st.MaxOut))
			printKeyValue(c.out, "metric", string(s.metric))
			printKeyValue(c.out, "max weight", formatDistance(st.MaxWeight, s.metric))
			if b, ok := s.graph.Bounds(); ok {
				printKeyValue(c.out, "lon", fmt.Sprintf("%.6f … %.6f", b.MinLon, b.MaxLon))
				printKeyValue(c.out, "lat", fmt.Sprintf("%.6f … %.6f", b.MinLat, b.MaxLat))
			}

			if !cmd.Flags().Changed("from") {
				return nil
			}
			res, err := bfs.Walk(s.graph, from, bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, StyleTitle.Render(fmt.Sprintf("Reachable from %d", from)))
			printKeyValue(c.out, "nodes", fmt.Sprintf("%d of %d", res.Reached(), st.Nodes))
			printKeyValue(c.out, "max hops", strconv.Itoa(res.MaxDepth()))
			if res.Reached() < st.Nodes {
				printWarning(c.out, "%d nodes cannot be reached from %d", st.Nodes-res.Reached(), from)
			}

			return nil
		},
	}

	cmd.Flags().Int64Var(&from, "from", 0, "also report how much of the network this node reaches")

	return cmd
}
