package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stencilgraph/stencilgraph/internal/cliutil"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "stencilgraph",
		Short:        "stencilgraph converts ASCII-art grids into vector scenes",
		Long:         `stencilgraph scans a grid of ASCII characters with a catalog of 2D stencils, composes the matches into a planar graph, and extracts polygons, open polylines, and labeled text in back-to-front order.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), cliutil.NewLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newParseCmd())
	return root
}
