package cmd

import (
	"os"

	"recipebox/models"

	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd(dataDirectory *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		newMigrateUpCmd(dataDirectory),
		newMigrateStatusCmd(dataDirectory),
	)

	return cmd
}

func newMigrateUpCmd(dataDirectory *string) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending schema migrations",
		Run: func(cmd *cobra.Command, args []string) {
			withDB(dataDirectory, cmd, func() error {
				if err := models.Migrate(); err != nil {
					return err
				}
				cmd.Println("All pending migrations applied successfully")
				return nil
			})
		},
	}
}

func newMigrateStatusCmd(dataDirectory *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Run: func(cmd *cobra.Command, args []string) {
			withDB(dataDirectory, cmd, func() error {
				version, err := models.SchemaVersion()
				if err != nil {
					return err
				}
				cmd.Printf("Schema version: %d\n", version)
				return nil
			})
		},
	}
}

// withDB initializes the database connection (without auto-migration), calls fn,
// and ensures models.Close() is called afterward. If initialization or fn fails,
// the error is printed and the process exits with code 1.
func withDB(dataDirectory *string, cmd *cobra.Command, fn func() error) {
	if err := os.MkdirAll(*dataDirectory, os.ModePerm); err != nil {
		cmd.PrintErrf("Failed to create data directory: %v\n", err)
		os.Exit(1)
	}
	if err := models.InitializeWithMigration(*dataDirectory, false); err != nil {
		cmd.PrintErrf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer models.Close()

	if err := fn(); err != nil {
		cmd.PrintErrf("%v\n", err)
		os.Exit(1)
	}
}
