package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSignoutCmd forgets the active trip on this device. The trip itself is
// untouched remotely.
func newSignoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Forget the active trip on this device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.trips.SignOut(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out. No active trip on this device.")
			return nil
		},
	}
}
