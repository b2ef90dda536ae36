package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fkhayef/wedding-rsvp/internal/database"
	"github.com/fkhayef/wedding-rsvp/internal/guest"
)

type importOptions struct {
	input string
	apply bool
}

func newImportCmd(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import guests from a CSV file",
		Long: "Parses a CSV file with a name and side header (tags and rsvp_status optional).\n" +
			"Without --apply the parsed guests are only printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input, "input", "", "CSV file to import (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Write the guests to the store (default is dry-run)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runImport(cmd *cobra.Command, a *app, opts importOptions) error {
	content, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", opts.input, err)
	}

	if !opts.apply {
		parsed, err := guest.ParseCSV(string(content))
		if err != nil {
			return err
		}
		printGuests(cmd.OutOrStdout(), parsed.Guests)
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d guests parsed, %d rows skipped (dry-run, use --apply to write)\n",
			len(parsed.Guests), parsed.Skipped)
		return nil
	}

	store, closeStore, err := database.OpenGuestStore(a.cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	service := guest.NewService(store, "")
	created, skipped, err := service.Import(cmd.Context(), string(content))
	if err != nil {
		return err
	}

	a.log.Info("guests imported",
		zap.String("file", opts.input),
		zap.Int("imported", len(created)),
		zap.Int("skipped", skipped),
	)
	printGuests(cmd.OutOrStdout(), created)
	return nil
}

func printGuests(out io.Writer, guests []*guest.Guest) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSIDE\tSTATUS\tINVITE ID\tTAGS")
	for _, g := range guests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", g.Name, g.Side, g.RSVPStatus, g.UniqueInviteID, g.Tags)
	}
	tw.Flush()
}
