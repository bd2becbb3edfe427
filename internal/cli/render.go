package cli

import (
	"fmt"
	"io"

	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/trip"
)

// renderTrip writes the status view: the resume headline, then guests and
// links when the trip has any.
func renderTrip(w io.Writer, active domain.Trip, participants []domain.Participant, links []domain.Link) {
	fmt.Fprintln(w, trip.When(active))
	fmt.Fprintf(w, "Trip ID: %s\n", active.ID)
	if active.IsConfirmed {
		fmt.Fprintln(w, "Status: confirmed")
	} else {
		fmt.Fprintln(w, "Status: awaiting confirmation")
	}

	if len(participants) > 0 {
		fmt.Fprintf(w, "\nGuests (%d):\n", len(participants))
		for _, p := range participants {
			mark := " "
			if p.IsConfirmed {
				mark = "x"
			}
			name := p.Name
			if name == "" {
				name = "(pending)"
			}
			fmt.Fprintf(w, "  [%s] %s <%s>\n", mark, name, p.Email)
		}
	}

	if len(links) > 0 {
		fmt.Fprintf(w, "\nLinks (%d):\n", len(links))
		for _, l := range links {
			fmt.Fprintf(w, "  %s: %s\n", l.Title, l.URL)
		}
	}
}
