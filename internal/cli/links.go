package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLinksCmd groups link management for the active trip.
func newLinksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Manage the active trip's shared links",
	}
	cmd.AddCommand(newLinksListCmd(app), newLinksAddCmd(app))
	return cmd
}

func newLinksListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the active trip's links",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tripID, err := app.requireTripID(ctx)
			if err != nil {
				return err
			}
			links, err := app.trips.Links(ctx, tripID)
			if err != nil {
				return err
			}

			if len(links) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No links yet.")
				return nil
			}
			for _, l := range links {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", l.Title, l.URL)
			}
			return nil
		},
	}
}

func newLinksAddCmd(app *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Attach a link to the active trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			tripID, err := app.requireTripID(ctx)
			if err != nil {
				return err
			}
			linkID, err := app.trips.AddLink(ctx, tripID, title, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Link added: %s\n", linkID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "what the link is for")
	cmd.MarkFlagRequired("title")
	return cmd
}
