// Package cli implements the roadpath command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and the default config file.
	appName = "roadpath"

	// defaultConfigFile is loaded from the working directory when --config is not set.
	defaultConfigFile = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, set via ldflags
	commit  = ""    // git commit SHA
	date    = ""    // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out   io.Writer
	flags dataFlags
}

// dataFlags are the persistent flags that locate and weigh the graph.
// Empty values defer to the config file.
type dataFlags struct {
	config string
	nodes  string
	edges  string
	metric string
}

// New creates a new CLI instance that logs to w at the given level and
// prints command output to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (not logs).
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Roadpath finds shortest routes on road networks",
		Long:         `Roadpath loads a road network from node and edge CSV files, weighs every road segment by its geographic length, and answers shortest-route queries from the terminal, an interactive explorer, or over HTTP.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s {{.Version}}\ncommit: %s\nbuilt: %s\n", appName, commit, date))

	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.config, "config", "c", "", "config file (default ./"+defaultConfigFile+" if present)")
	pf.StringVar(&c.flags.nodes, "nodes", "", "nodes CSV (id,lon,lat)")
	pf.StringVar(&c.flags.edges, "edges", "", "edges CSV (u,v)")
	pf.StringVar(&c.flags.metric, "metric", "", "edge weight metric: haversine, planar")

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.statsCommand())

	return root
}
