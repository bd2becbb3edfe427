// Package ics renders a planned trip as an iCalendar invite so the owner can
// share the plan outside the app. The trip becomes a single all-day VEVENT
// with the guest list as attendees.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/jmoraes/planner/internal/domain"
)

// BuildInvite serializes trip as an ICS REQUEST. now is the DTSTAMP value,
// injected so output is reproducible in tests. The DTEND day is exclusive
// per RFC 5545, hence the one-day shift past the trip's last day.
func BuildInvite(trip domain.Trip, guests []string, owner domain.Owner, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodRequest)

	event := cal.AddEvent(fmt.Sprintf("trip-%s@planner", trip.ID))
	event.SetDtStampTime(now.UTC())
	event.SetSummary("Trip to " + trip.Destination)
	event.SetLocation(trip.Destination)
	event.SetAllDayStartAt(trip.StartsAt.UTC())
	event.SetAllDayEndAt(trip.EndsAt.UTC().AddDate(0, 0, 1))
	event.SetOrganizer("mailto:"+owner.Email, ical.WithCN(owner.Name))

	for _, guest := range guests {
		event.AddAttendee(guest,
			ical.CalendarUserTypeIndividual,
			ical.ParticipationStatusNeedsAction,
			ical.ParticipationRoleReqParticipant,
			ical.WithRSVP(true),
		)
	}

	return cal.Serialize()
}
