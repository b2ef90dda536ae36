package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the guests table and its indexes in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.StoreDriver != config.DriverPostgres {
				return fmt.Errorf("migrate needs STORE_DRIVER=%s, got %q", config.DriverPostgres, a.cfg.StoreDriver)
			}

			db, err := database.NewPostgresConnection(a.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			return database.Migrate(cmd.Context(), db, a.log)
		},
	}
}
