// Package wizard implements the multi-step trip creation flow as an explicit
// state machine: collect destination and dates, collect guest emails, submit
// to the remote service, and record the new trip as the device's active trip.
//
// Combinations that make no sense (submitting with the calendar open, editing
// guests mid-submission) are unrepresentable: every user gesture is a method
// that is either valid in the current state or ignored, mirroring how the UI
// disables the corresponding control.
package wizard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/jmoraes/planner/internal/daterange"
	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/guestlist"
)

// State is the wizard's position in the creation flow.
type State int

const (
	// StateCollectingDetails collects the destination and the date range.
	StateCollectingDetails State = iota
	// StateCollectingGuests collects invitee emails; details are frozen
	// until EditDetails is called.
	StateCollectingGuests
	// StateSubmitting has one trip-creation call in flight.
	StateSubmitting
	// StateFailed holds a failed submission; all fields are preserved so
	// the user can retry or edit without re-entering anything.
	StateFailed
	// StateCompleted is terminal: the trip exists remotely and its id has
	// been recorded as the active trip.
	StateCompleted
)

// String returns the state name for logs and error messages.
func (s State) String() string {
	switch s {
	case StateCollectingDetails:
		return "collecting_details"
	case StateCollectingGuests:
		return "collecting_guests"
	case StateSubmitting:
		return "submitting"
	case StateFailed:
		return "failed"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// minDestinationLen is the minimum number of characters in a destination.
const minDestinationLen = 4

// TripCreator is the remote trip-creation boundary the wizard depends on.
// Defining the interface here (in the consumer package) lets tests inject a
// mock without touching the HTTP client.
type TripCreator interface {
	CreateTrip(ctx context.Context, draft domain.TripDraft) (string, error)
}

// PointerStore persists the device's active-trip pointer after a successful
// submission.
type PointerStore interface {
	Save(ctx context.Context, tripID string) error
}

// Wizard is one in-progress trip creation. It is not safe for concurrent
// use: all gestures arrive from a single UI event loop.
type Wizard struct {
	creator TripCreator
	store   PointerStore
	owner   domain.Owner
	log     *slog.Logger

	state       State
	destination string
	dates       domain.DateSelection
	guests      guestlist.List
	tripID      string
	failure     error
}

// New returns a Wizard in StateCollectingDetails with empty fields.
// A nil log falls back to slog.Default().
func New(creator TripCreator, store PointerStore, owner domain.Owner, log *slog.Logger) *Wizard {
	if log == nil {
		log = slog.Default()
	}
	return &Wizard{creator: creator, store: store, owner: owner, log: log}
}

// State returns the wizard's current state.
func (w *Wizard) State() State { return w.state }

// Destination returns the destination entered so far.
func (w *Wizard) Destination() string { return w.destination }

// Dates returns the current date selection.
func (w *Wizard) Dates() domain.DateSelection { return w.dates }

// Guests returns the invited addresses in insertion order.
func (w *Wizard) Guests() []string { return w.guests.Emails() }

// TripID returns the created trip's id once the wizard is completed.
func (w *Wizard) TripID() string { return w.tripID }

// Failure returns the error of the last failed submission, or nil.
func (w *Wizard) Failure() error { return w.failure }

// SetDestination replaces the destination text. Ignored outside
// StateCollectingDetails, matching the UI where the field is read-only past
// the details step.
func (w *Wizard) SetDestination(destination string) {
	if w.state != StateCollectingDetails {
		return
	}
	w.destination = destination
}

// SelectDate folds one calendar tap into the date selection via the range
// selector. Ignored outside StateCollectingDetails; the calendar is only
// reachable from the details step.
func (w *Wizard) SelectDate(tapped domain.Date) {
	if w.state != StateCollectingDetails {
		return
	}
	w.dates = daterange.Apply(w.dates, tapped)
}

// MarkedDates returns the rendering marks for the current selection, keyed
// by ISO day string.
func (w *Wizard) MarkedDates() map[string]domain.DayMark {
	return daterange.Marked(w.dates)
}

// DateLabel returns the short display text for the current selection.
func (w *Wizard) DateLabel() (string, bool) {
	return daterange.Label(w.dates)
}

// AddGuest validates and appends an invitee email. Only effective in
// StateCollectingGuests; in any other state the gesture is ignored.
func (w *Wizard) AddGuest(email string) error {
	if w.state != StateCollectingGuests {
		return nil
	}
	if err := w.guests.Add(email); err != nil {
		return fmt.Errorf("wizard.Wizard.AddGuest: %w", err)
	}
	return nil
}

// RemoveGuest removes an invitee email; removing an absent address is a
// no-op. Only effective in StateCollectingGuests.
func (w *Wizard) RemoveGuest(email string) {
	if w.state != StateCollectingGuests {
		return
	}
	w.guests.Remove(email)
}

// Advance moves from details collection to guest collection after
// validating the details step. Rules are checked in a fixed order:
// a blank destination or an incomplete date range is reported as
// domain.ErrIncompleteDetails before the length rule, and a destination
// under four characters as domain.ErrDestinationTooShort. The first failing
// rule wins; there is no aggregate report.
//
// Calling Advance when already in StateCollectingGuests is an idempotent
// no-op, so re-entering from a detail edit never loses the guest list.
func (w *Wizard) Advance() error {
	switch w.state {
	case StateCollectingGuests:
		return nil
	case StateCollectingDetails:
		if strings.TrimSpace(w.destination) == "" || !w.dates.Complete() {
			return fmt.Errorf("wizard.Wizard.Advance: %w", domain.ErrIncompleteDetails)
		}
		if utf8.RuneCountInString(w.destination) < minDestinationLen {
			return fmt.Errorf("wizard.Wizard.Advance: %w", domain.ErrDestinationTooShort)
		}
		w.state = StateCollectingGuests
		return nil
	default:
		return nil
	}
}

// EditDetails reopens the details step from guest collection or from a
// failed submission. All fields, including the guest list, are preserved.
func (w *Wizard) EditDetails() {
	if w.state == StateCollectingGuests || w.state == StateFailed {
		w.state = StateCollectingDetails
	}
}

// Confirm submits the trip. It is only effective in StateCollectingGuests;
// the UI's confirmation prompt happens before this call. While a submission
// is in flight (StateSubmitting) further Confirm calls are ignored, so at
// most one remote call is ever outstanding.
//
// On success the wizard is StateCompleted and the new trip id has been
// saved as the device's active trip. On failure the wizard is StateFailed
// with every field intact and the error is returned for display.
func (w *Wizard) Confirm(ctx context.Context) error {
	if w.state != StateCollectingGuests {
		return nil
	}
	return w.submit(ctx)
}

// Retry re-submits after a failure. Ignored unless the wizard is
// StateFailed.
func (w *Wizard) Retry(ctx context.Context) error {
	if w.state != StateFailed {
		return nil
	}
	return w.submit(ctx)
}

// Reset discards the in-progress trip and returns the wizard to its initial
// empty state.
func (w *Wizard) Reset() {
	w.state = StateCollectingDetails
	w.destination = ""
	w.dates = domain.DateSelection{}
	w.guests = guestlist.List{}
	w.tripID = ""
	w.failure = nil
}

// submit performs the single in-flight creation call and the resulting
// state transition.
func (w *Wizard) submit(ctx context.Context) error {
	w.state = StateSubmitting
	w.failure = nil

	draft := domain.TripDraft{
		Destination:  w.destination,
		StartsAt:     w.dates.Start.Time(),
		EndsAt:       w.dates.End.Time(),
		InviteEmails: w.guests.Emails(),
		Owner:        w.owner,
	}

	tripID, err := w.creator.CreateTrip(ctx, draft)
	if err != nil {
		w.state = StateFailed
		w.failure = err
		w.log.Warn("trip creation failed", "destination", draft.Destination, "error", err)
		return fmt.Errorf("wizard.Wizard.Confirm: %w", err)
	}

	w.tripID = tripID
	w.state = StateCompleted
	w.log.Info("trip created", "trip_id", tripID, "guests", len(draft.InviteEmails))

	// Pointer persistence fails open: the trip exists remotely either way,
	// the next launch just starts without a resume.
	if err := w.store.Save(ctx, tripID); err != nil {
		w.log.Warn("could not save active trip pointer", "trip_id", tripID, "error", err)
	}
	return nil
}
