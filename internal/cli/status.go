package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newStatusCmd shows the device's active trip, or says there is none.
func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, app)
		},
	}
}

// runStatus is shared between "planner" and "planner status".
func runStatus(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()

	active, ok := app.trips.Resume(ctx)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No active trip. Run \"planner plan\" to create one.")
		return nil
	}

	// Guests and links are best-effort decoration of the headline.
	participants, err := app.trips.Participants(ctx, active.ID)
	if err != nil {
		app.log.Warn("could not list participants", "trip_id", active.ID, "error", err)
	}
	links, err := app.trips.Links(ctx, active.ID)
	if err != nil {
		app.log.Warn("could not list links", "trip_id", active.ID, "error", err)
	}

	renderTrip(cmd.OutOrStdout(), active, participants, links)
	return nil
}
