package main

import (
	"github.com/spf13/cobra"
)

// Opening the store applies pending SQLite migrations, so this command
// only has to open and close it. MongoDB needs no schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cleanup, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		cleanup()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
