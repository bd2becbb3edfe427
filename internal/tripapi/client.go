// Package tripapi is the HTTP client for the remote trip, participant, and
// link services. It owns JSON encoding and error mapping only; no business
// rules live here.
//
// Failures are mapped onto two sentinels: a 404 becomes domain.ErrNotFound,
// and everything else (transport errors, other non-2xx statuses, bad
// payloads) wraps domain.ErrRemoteCall so callers can treat it as a single
// retryable condition.
package tripapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jmoraes/planner/internal/domain"
)

// Client talks to the remote planner API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New constructs a Client for the service at baseURL. token, when non-empty,
// is sent as a bearer Authorization header on every request. A nil log falls
// back to slog.Default().
func New(baseURL, token string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: newLoggingTransport(http.DefaultTransport, log),
		},
	}
}

// ---- trips -----------------------------------------------------------------

type createTripRequest struct {
	Destination    string   `json:"destination"`
	StartsAt       string   `json:"starts_at"`
	EndsAt         string   `json:"ends_at"`
	EmailsToInvite []string `json:"emails_to_invite"`
	OwnerName      string   `json:"owner_name"`
	OwnerEmail     string   `json:"owner_email"`
}

type createTripResponse struct {
	TripID string `json:"tripId"`
}

// CreateTrip submits a validated draft and returns the new trip's id.
// It satisfies wizard.TripCreator.
func (c *Client) CreateTrip(ctx context.Context, draft domain.TripDraft) (string, error) {
	body := createTripRequest{
		Destination:    draft.Destination,
		StartsAt:       draft.StartsAt.Format(time.RFC3339),
		EndsAt:         draft.EndsAt.Format(time.RFC3339),
		EmailsToInvite: draft.InviteEmails,
		OwnerName:      draft.Owner.Name,
		OwnerEmail:     draft.Owner.Email,
	}

	var resp createTripResponse
	if err := c.do(ctx, http.MethodPost, "/trips", body, &resp); err != nil {
		return "", fmt.Errorf("tripapi.Client.CreateTrip: %w", err)
	}
	return resp.TripID, nil
}

type getTripResponse struct {
	Trip domain.Trip `json:"trip"`
}

// GetTrip fetches one trip by id. Returns domain.ErrNotFound when the
// service does not know the id.
func (c *Client) GetTrip(ctx context.Context, tripID string) (domain.Trip, error) {
	var resp getTripResponse
	if err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(tripID), nil, &resp); err != nil {
		return domain.Trip{}, fmt.Errorf("tripapi.Client.GetTrip: %w", err)
	}
	return resp.Trip, nil
}

type updateTripRequest struct {
	Destination string `json:"destination"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
}

// UpdateTrip overwrites a trip's destination and date range.
func (c *Client) UpdateTrip(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
	body := updateTripRequest{
		Destination: destination,
		StartsAt:    startsAt.Format(time.RFC3339),
		EndsAt:      endsAt.Format(time.RFC3339),
	}

	if err := c.do(ctx, http.MethodPut, "/trips/"+url.PathEscape(tripID), body, nil); err != nil {
		return fmt.Errorf("tripapi.Client.UpdateTrip: %w", err)
	}
	return nil
}

// ---- participants ----------------------------------------------------------

type confirmParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ConfirmParticipant confirms an invited guest's attendance by participant id.
func (c *Client) ConfirmParticipant(ctx context.Context, participantID, name, email string) error {
	body := confirmParticipantRequest{Name: name, Email: email}

	path := "/participants/" + url.PathEscape(participantID) + "/confirm"
	if err := c.do(ctx, http.MethodPatch, path, body, nil); err != nil {
		return fmt.Errorf("tripapi.Client.ConfirmParticipant: %w", err)
	}
	return nil
}

type listParticipantsResponse struct {
	Participants []domain.Participant `json:"participants"`
}

// ListParticipants returns all invited guests of a trip. Always returns a
// non-nil slice so callers can safely range over it.
func (c *Client) ListParticipants(ctx context.Context, tripID string) ([]domain.Participant, error) {
	var resp listParticipantsResponse
	path := "/trips/" + url.PathEscape(tripID) + "/participants"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("tripapi.Client.ListParticipants: %w", err)
	}
	if resp.Participants == nil {
		return []domain.Participant{}, nil
	}
	return resp.Participants, nil
}

// ---- links -----------------------------------------------------------------

type createLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type createLinkResponse struct {
	LinkID string `json:"linkId"`
}

// CreateLink attaches a shared URL to a trip and returns the new link's id.
func (c *Client) CreateLink(ctx context.Context, tripID, title, linkURL string) (string, error) {
	body := createLinkRequest{Title: title, URL: linkURL}

	var resp createLinkResponse
	path := "/trips/" + url.PathEscape(tripID) + "/links"
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return "", fmt.Errorf("tripapi.Client.CreateLink: %w", err)
	}
	return resp.LinkID, nil
}

type listLinksResponse struct {
	Links []domain.Link `json:"links"`
}

// ListLinks returns all shared links of a trip. Always returns a non-nil
// slice so callers can safely range over it.
func (c *Client) ListLinks(ctx context.Context, tripID string) ([]domain.Link, error) {
	var resp listLinksResponse
	path := "/trips/" + url.PathEscape(tripID) + "/links"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("tripapi.Client.ListLinks: %w", err)
	}
	if resp.Links == nil {
		return []domain.Link{}, nil
	}
	return resp.Links, nil
}

// ---- plumbing --------------------------------------------------------------

// do performs one JSON request/response round trip and maps failures onto
// the domain sentinels. out may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Buffer
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %w", domain.ErrRemoteCall, err)
		}
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrRemoteCall, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRemoteCall, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrRemoteCall, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrRemoteCall, err)
	}
	return nil
}
