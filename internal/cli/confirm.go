package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfirmCmd confirms an invited guest's attendance. The trip and
// participant ids come from the invite link the guest received.
func newConfirmCmd(app *App) *cobra.Command {
	var (
		tripID        string
		participantID string
		name          string
		email         string
	)

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Confirm your attendance on a trip you were invited to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.trips.ConfirmAttendance(cmd.Context(), tripID, participantID, name, email); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Attendance confirmed. This trip is now your active trip.")
			return nil
		},
	}

	cmd.Flags().StringVar(&tripID, "trip", "", "trip id from the invite")
	cmd.Flags().StringVar(&participantID, "participant", "", "participant id from the invite")
	cmd.Flags().StringVar(&name, "name", "", "your full name")
	cmd.Flags().StringVar(&email, "email", "", "the email the invite was sent to")
	cmd.MarkFlagRequired("trip")
	cmd.MarkFlagRequired("participant")
	return cmd
}
