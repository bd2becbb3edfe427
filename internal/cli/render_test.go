package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/jmoraes/planner/internal/domain"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestRenderTrip_Full(t *testing.T) {
	active := domain.Trip{
		ID:          "trip-123",
		Destination: "Paris",
		StartsAt:    day(2026, time.June, 1),
		EndsAt:      day(2026, time.June, 10),
		IsConfirmed: true,
	}
	participants := []domain.Participant{
		{ID: "p-1", Name: "Ana Souza", Email: "ana@example.com", IsConfirmed: true},
		{ID: "p-2", Name: "", Email: "bruno@example.com", IsConfirmed: false},
	}
	links := []domain.Link{
		{ID: "l-1", Title: "Hotel reservation", URL: "https://hotels.example/r/42"},
	}

	var buf bytes.Buffer
	renderTrip(&buf, active, participants, links)

	g := goldie.New(t)
	g.Assert(t, "status_full", buf.Bytes())
}

func TestRenderTrip_BareWithLongDestination(t *testing.T) {
	active := domain.Trip{
		ID:          "trip-9",
		Destination: "San Sebastián, Spain",
		StartsAt:    day(2026, time.February, 3),
		EndsAt:      day(2026, time.February, 7),
	}

	var buf bytes.Buffer
	renderTrip(&buf, active, nil, nil)

	g := goldie.New(t)
	g.Assert(t, "status_bare", buf.Bytes())
}
