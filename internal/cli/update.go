package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoraes/planner/internal/daterange"
	"github.com/jmoraes/planner/internal/domain"
)

// newUpdateCmd changes the active trip's destination and dates.
func newUpdateCmd(app *App) *cobra.Command {
	var (
		destination string
		startStr    string
		endStr      string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the active trip's destination and dates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			tripID, err := app.requireTripID(ctx)
			if err != nil {
				return err
			}

			start, err := admitDate(startStr)
			if err != nil {
				return err
			}
			end, err := admitDate(endStr)
			if err != nil {
				return err
			}

			// Reuse the selector so the pair is normalized exactly like
			// two calendar taps.
			var dates domain.DateSelection
			dates = daterange.Apply(dates, start)
			dates = daterange.Apply(dates, end)

			if err := app.trips.Update(ctx, tripID, destination, dates); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Trip updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "new destination")
	cmd.Flags().StringVar(&startStr, "start", "", "new first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "new last day (YYYY-MM-DD)")
	return cmd
}
