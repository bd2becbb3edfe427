package cli

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/trip"
	"github.com/jmoraes/planner/internal/wizard"
)

// newPlanCmd creates a trip through the wizard: details, guests, then a
// confirmation gesture before submission.
func newPlanCmd(app *App) *cobra.Command {
	var (
		destination string
		startStr    string
		endStr      string
		guests      []string
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Create a new trip",
		Example: `  planner plan --destination "Paris" --start 2026-06-01 --end 2026-06-10 \
      --guest a@x.com --guest b@x.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.ownerErr != nil {
				return app.ownerErr
			}

			start, err := admitDate(startStr)
			if err != nil {
				return err
			}
			end, err := admitDate(endStr)
			if err != nil {
				return err
			}

			w := wizard.New(app.api, app.store, app.owner, app.log)
			w.SetDestination(destination)
			w.SelectDate(start)
			w.SelectDate(end)
			if err := w.Advance(); err != nil {
				return err
			}

			for _, guest := range guests {
				if err := w.AddGuest(guest); err != nil {
					return fmt.Errorf("guest %q: %w", guest, err)
				}
			}

			label, _ := w.DateLabel()
			fmt.Fprintf(cmd.OutOrStdout(), "Trip to %s, %s, %d guest(s).\n",
				w.Destination(), label, len(w.Guests()))
			if !yes && !confirmPrompt(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), "Trip discarded.")
				return nil
			}

			if err := w.Confirm(cmd.Context()); err != nil {
				return err
			}

			created, err := app.api.GetTrip(cmd.Context(), w.TripID())
			if err != nil {
				// The trip exists; showing the headline is best-effort.
				fmt.Fprintf(cmd.OutOrStdout(), "Trip created: %s\n", w.TripID())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trip created: %s\n%s\n", created.ID, trip.When(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "where the trip goes")
	cmd.Flags().StringVar(&startStr, "start", "", "first day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endStr, "end", "", "last day of the trip (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&guests, "guest", nil, "guest email to invite (repeatable)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "submit without the confirmation prompt")
	return cmd
}

// admitDate parses a day flag and enforces the calendar's admission rule:
// days earlier than today are not selectable. The rule lives here, at the
// UI boundary, not inside the range selector.
func admitDate(value string) (domain.Date, error) {
	if value == "" {
		return domain.Date{}, fmt.Errorf("%w", domain.ErrIncompleteDetails)
	}
	day, err := domain.ParseDate(value)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	if day.Before(domain.DateOf(time.Now())) {
		return domain.Date{}, fmt.Errorf("date %s is in the past", day)
	}
	return day, nil
}

// confirmPrompt asks for the explicit confirmation gesture.
func confirmPrompt(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Confirm trip? [y/N] ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
