package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the named subcommand. The server itself starts when no
// subcommand is given, so the root command only dispatches.
func Execute(version string, dataDirectory *string, args []string) {
	root := &cobra.Command{
		Use:           "recipebox",
		Short:         "Single-owner recipe management web application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewMigrateCmd(dataDirectory),
		NewVersionCmd(version),
	)

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		root.PrintErrf("%v\n", err)
		os.Exit(1)
	}
}
