package main

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// execute builds and runs the editdiff root command: a cobra root with a
// persistent --verbose flag that raises the context-carried logger to
// debug level.
func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "editdiff",
		Short:        "editdiff computes and renders edit-distance alignments between two files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newDiffCmd())

	return root.ExecuteContext(context.Background())
}
