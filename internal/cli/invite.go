package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmoraes/planner/internal/ics"
)

// newInviteCmd exports the active trip as an iCalendar invite.
func newInviteCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Export the active trip as an iCalendar (.ics) invite",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if app.ownerErr != nil {
				return app.ownerErr
			}
			tripID, err := app.requireTripID(ctx)
			if err != nil {
				return err
			}
			active, err := app.api.GetTrip(ctx, tripID)
			if err != nil {
				return err
			}

			participants, err := app.trips.Participants(ctx, active.ID)
			if err != nil {
				return err
			}
			guests := make([]string, 0, len(participants))
			for _, p := range participants {
				guests = append(guests, p.Email)
			}

			invite := ics.BuildInvite(active, guests, app.owner, time.Now())
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), invite)
				return nil
			}
			if err := os.WriteFile(out, []byte(invite), 0o644); err != nil {
				return fmt.Errorf("write invite: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invite written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the invite to a file instead of stdout")
	return cmd
}
