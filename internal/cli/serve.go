package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadpath/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve route queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.loadSession(ctx)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = s.cfg.Server.Addr
			}

			srv, err := server.New(s.graph,
				server.WithLogger(loggerFromContext(ctx)),
				server.WithMetric(s.metric),
			)
			if err != nil {
				return err
			}
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
