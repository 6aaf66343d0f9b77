package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func (c *CLI) exploreCommand() *cobra.Command {
	var start, end int64

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the road network and pick routes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.loadSession(ctx)
			if err != nil {
				return err
			}
			if s.graph.Order() == 0 {
				return errors.New("explore: graph has no nodes")
			}

			m := NewExploreModel(s.graph, s.projection(), s.metric)
			if a, b, err := s.endpoints(nodeFlag(cmd, "start", start), nodeFlag(cmd, "end", end)); err == nil {
				m = m.WithRoute(a, b)
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("explore: %w", err)
			}
			return ctx.Err()
		},
	}

	cmd.Flags().Int64Var(&start, "start", 0, "initial start node ID")
	cmd.Flags().Int64Var(&end, "end", 0, "initial end node ID")

	return cmd
}
