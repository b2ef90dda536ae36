package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/fkhayef/wedding-rsvp/internal/database"
	"github.com/fkhayef/wedding-rsvp/internal/guest"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print RSVP statistics as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := database.OpenGuestStore(a.cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			stats, err := guest.NewService(store, "").Stats(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}
}
