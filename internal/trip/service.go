// Package trip contains the business logic for an existing trip: resuming it
// at launch, updating its details, confirming an invited participant, and
// managing shared links. Services validate inputs and orchestrate the remote
// API and the session store; no HTTP or SQL lives here.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmoraes/planner/internal/daterange"
	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/guestlist"
	"github.com/jmoraes/planner/internal/session"
)

// maxWhenDestination is where the destination is cut in the resume headline.
const maxWhenDestination = 14

// API defines the remote operations the service depends on. The interface
// lives in the consumer package so tests can inject a mock without touching
// the HTTP client.
type API interface {
	GetTrip(ctx context.Context, tripID string) (domain.Trip, error)
	UpdateTrip(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error
	ConfirmParticipant(ctx context.Context, participantID, name, email string) error
	ListParticipants(ctx context.Context, tripID string) ([]domain.Participant, error)
	CreateLink(ctx context.Context, tripID, title, linkURL string) (string, error)
	ListLinks(ctx context.Context, tripID string) ([]domain.Link, error)
}

// Service implements the resume and trip-management flows.
type Service struct {
	api   API
	store session.Store
	log   *slog.Logger
}

// NewService constructs a Service. A nil log falls back to slog.Default().
func NewService(api API, store session.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{api: api, store: store, log: log}
}

// Resume decides the launch path. When a trip pointer is saved and the trip
// can be fetched, it returns the trip and true. In every other case (empty
// slot, unreadable store, unreachable service, deleted trip) it fails open
// and returns false so the app starts trip creation instead of blocking.
func (s *Service) Resume(ctx context.Context) (domain.Trip, bool) {
	tripID, err := s.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoActiveTrip) {
			s.log.Warn("could not read active trip pointer", "error", err)
		}
		return domain.Trip{}, false
	}

	trip, err := s.api.GetTrip(ctx, tripID)
	if err != nil {
		s.log.Warn("could not fetch active trip", "trip_id", tripID, "error", err)
		return domain.Trip{}, false
	}
	return trip, true
}

// When renders the resume headline for a trip: the destination, cut at 14
// runes, followed by the date-range label ("Paris, 1 to 10 of June.").
func When(trip domain.Trip) string {
	destination := trip.Destination
	if utf8.RuneCountInString(destination) > maxWhenDestination {
		destination = string([]rune(destination)[:maxWhenDestination]) + "..."
	}

	start := domain.DateOf(trip.StartsAt.UTC())
	end := domain.DateOf(trip.EndsAt.UTC())
	label, _ := daterange.Label(domain.DateSelection{Start: &start, End: &end})
	return fmt.Sprintf("%s, %s.", destination, label)
}

// Update overwrites a trip's destination and dates after re-running the
// wizard's details validation: destination present and at least four
// characters, both date bounds set.
func (s *Service) Update(ctx context.Context, tripID, destination string, dates domain.DateSelection) error {
	if strings.TrimSpace(destination) == "" || !dates.Complete() {
		return fmt.Errorf("trip.Service.Update: %w", domain.ErrIncompleteDetails)
	}
	if utf8.RuneCountInString(destination) < 4 {
		return fmt.Errorf("trip.Service.Update: %w", domain.ErrDestinationTooShort)
	}

	if err := s.api.UpdateTrip(ctx, tripID, destination, dates.Start.Time(), dates.End.Time()); err != nil {
		return fmt.Errorf("trip.Service.Update: %w", err)
	}
	return nil
}

// ConfirmAttendance confirms an invited guest by participant id and records
// the trip as this device's active trip. Name and email are trimmed before
// validation; the confirmation form is the one place padded input is
// accepted.
//
// A failure to save the pointer is non-fatal: the confirmation already
// happened remotely, so it is logged and swallowed.
func (s *Service) ConfirmAttendance(ctx context.Context, tripID, participantID, name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" {
		return fmt.Errorf("trip.Service.ConfirmAttendance: %w: name and email are required", domain.ErrValidation)
	}
	if !guestlist.Validate(email) {
		return fmt.Errorf("trip.Service.ConfirmAttendance: %w", domain.ErrInvalidEmail)
	}

	if err := s.api.ConfirmParticipant(ctx, participantID, name, email); err != nil {
		return fmt.Errorf("trip.Service.ConfirmAttendance: %w", err)
	}

	if err := s.store.Save(ctx, tripID); err != nil {
		s.log.Warn("could not save active trip pointer", "trip_id", tripID, "error", err)
	}
	return nil
}

// Participants returns the trip's invited guests.
func (s *Service) Participants(ctx context.Context, tripID string) ([]domain.Participant, error) {
	participants, err := s.api.ListParticipants(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Service.Participants: %w", err)
	}
	return participants, nil
}

// AddLink validates and attaches a shared URL to the trip. The URL must be
// absolute with an http or https scheme; the title must be non-blank.
func (s *Service) AddLink(ctx context.Context, tripID, title, linkURL string) (string, error) {
	linkURL = strings.TrimSpace(linkURL)
	if !validLinkURL(linkURL) {
		return "", fmt.Errorf("trip.Service.AddLink: %w: invalid link URL", domain.ErrValidation)
	}
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("trip.Service.AddLink: %w: link title is required", domain.ErrValidation)
	}

	linkID, err := s.api.CreateLink(ctx, tripID, title, linkURL)
	if err != nil {
		return "", fmt.Errorf("trip.Service.AddLink: %w", err)
	}
	return linkID, nil
}

// Links returns the trip's shared links.
func (s *Service) Links(ctx context.Context, tripID string) ([]domain.Link, error) {
	links, err := s.api.ListLinks(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("trip.Service.Links: %w", err)
	}
	return links, nil
}

// SignOut clears the active trip pointer. The pointer going away is the
// whole point, so a storage failure here is surfaced to the caller.
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.store.Remove(ctx); err != nil {
		return fmt.Errorf("trip.Service.SignOut: %w", err)
	}
	return nil
}

// validLinkURL reports whether raw is an absolute http(s) URL.
func validLinkURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
