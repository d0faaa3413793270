package main

import (
	"github.com/2beens/fittrack/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the fittrack tables and indexes that do not exist yet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.Migrate(commandContext(cmd), dbPool); err != nil {
			return err
		}
		color.Green("✓ schema up to date (%s)", cfg.PostgresDBName)
		return nil
	},
}
