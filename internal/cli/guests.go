package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGuestsCmd lists the active trip's invited guests and their
// confirmation state.
func newGuestsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "guests",
		Short: "List the active trip's guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tripID, err := app.requireTripID(ctx)
			if err != nil {
				return err
			}
			participants, err := app.trips.Participants(ctx, tripID)
			if err != nil {
				return err
			}

			if len(participants) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No guests invited yet.")
				return nil
			}
			for _, p := range participants {
				mark := " "
				if p.IsConfirmed {
					mark = "x"
				}
				name := p.Name
				if name == "" {
					name = "(pending)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s <%s>\n", mark, name, p.Email)
			}
			return nil
		},
	}
}
