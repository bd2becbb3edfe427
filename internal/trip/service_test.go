package trip_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoraes/planner/internal/domain"
	"github.com/jmoraes/planner/internal/session"
	"github.com/jmoraes/planner/internal/trip"
)

// mockAPI is a hand-written test double for trip.API.
// Each method is a function field; set only the ones your test needs.
type mockAPI struct {
	getTrip            func(ctx context.Context, tripID string) (domain.Trip, error)
	updateTrip         func(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error
	confirmParticipant func(ctx context.Context, participantID, name, email string) error
	listParticipants   func(ctx context.Context, tripID string) ([]domain.Participant, error)
	createLink         func(ctx context.Context, tripID, title, linkURL string) (string, error)
	listLinks          func(ctx context.Context, tripID string) ([]domain.Link, error)
}

func (m *mockAPI) GetTrip(ctx context.Context, tripID string) (domain.Trip, error) {
	return m.getTrip(ctx, tripID)
}
func (m *mockAPI) UpdateTrip(ctx context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
	return m.updateTrip(ctx, tripID, destination, startsAt, endsAt)
}
func (m *mockAPI) ConfirmParticipant(ctx context.Context, participantID, name, email string) error {
	return m.confirmParticipant(ctx, participantID, name, email)
}
func (m *mockAPI) ListParticipants(ctx context.Context, tripID string) ([]domain.Participant, error) {
	return m.listParticipants(ctx, tripID)
}
func (m *mockAPI) CreateLink(ctx context.Context, tripID, title, linkURL string) (string, error) {
	return m.createLink(ctx, tripID, title, linkURL)
}
func (m *mockAPI) ListLinks(ctx context.Context, tripID string) ([]domain.Link, error) {
	return m.listLinks(ctx, tripID)
}

var _ trip.API = (*mockAPI)(nil)

// mockStore is a test double for session.Store.
type mockStore struct {
	save   func(ctx context.Context, tripID string) error
	get    func(ctx context.Context) (string, error)
	remove func(ctx context.Context) error
}

func (m *mockStore) Save(ctx context.Context, tripID string) error { return m.save(ctx, tripID) }
func (m *mockStore) Get(ctx context.Context) (string, error)       { return m.get(ctx) }
func (m *mockStore) Remove(ctx context.Context) error              { return m.remove(ctx) }

var _ session.Store = (*mockStore)(nil)

// ---- helpers ---------------------------------------------------------------

func activeTrip() domain.Trip {
	return domain.Trip{
		ID:          "trip-123",
		Destination: "Paris",
		StartsAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
}

func emptyStore() *mockStore {
	return &mockStore{
		get: func(_ context.Context) (string, error) { return "", domain.ErrNoActiveTrip },
	}
}

func pointerStore(tripID string) *mockStore {
	return &mockStore{
		get:  func(_ context.Context) (string, error) { return tripID, nil },
		save: func(_ context.Context, _ string) error { return nil },
	}
}

func completeDates() domain.DateSelection {
	start := domain.NewDate(2025, time.July, 1)
	end := domain.NewDate(2025, time.July, 5)
	return domain.DateSelection{Start: &start, End: &end}
}

// ---- Resume ----------------------------------------------------------------

func TestResume_NoPointerStartsFresh(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	_, ok := svc.Resume(context.Background())

	assert.False(t, ok)
}

func TestResume_PointerAndFetchSucceed(t *testing.T) {
	api := &mockAPI{
		getTrip: func(_ context.Context, tripID string) (domain.Trip, error) {
			assert.Equal(t, "trip-123", tripID)
			return activeTrip(), nil
		},
	}
	svc := trip.NewService(api, pointerStore("trip-123"), nil)

	got, ok := svc.Resume(context.Background())

	require.True(t, ok)
	assert.Equal(t, "Paris", got.Destination)
}

func TestResume_StorageErrorFailsOpen(t *testing.T) {
	store := &mockStore{
		get: func(_ context.Context) (string, error) { return "", domain.ErrStorageUnavailable },
	}
	svc := trip.NewService(&mockAPI{}, store, nil)

	_, ok := svc.Resume(context.Background())

	assert.False(t, ok)
}

func TestResume_FetchErrorFailsOpen(t *testing.T) {
	api := &mockAPI{
		getTrip: func(_ context.Context, _ string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	svc := trip.NewService(api, pointerStore("trip-123"), nil)

	_, ok := svc.Resume(context.Background())

	assert.False(t, ok)
}

// ---- When ------------------------------------------------------------------

func TestWhen_ShortDestination(t *testing.T) {
	assert.Equal(t, "Paris, 1 to 10 of June.", trip.When(activeTrip()))
}

func TestWhen_LongDestinationTruncated(t *testing.T) {
	tr := activeTrip()
	tr.Destination = "Rio de Janeiro, Brazil"

	assert.Equal(t, "Rio de Janeiro..., 1 to 10 of June.", trip.When(tr))
}

// ---- Update ----------------------------------------------------------------

func TestUpdate_Valid(t *testing.T) {
	var gotDest string
	var gotStart, gotEnd time.Time
	api := &mockAPI{
		updateTrip: func(_ context.Context, tripID, destination string, startsAt, endsAt time.Time) error {
			assert.Equal(t, "trip-123", tripID)
			gotDest, gotStart, gotEnd = destination, startsAt, endsAt
			return nil
		},
	}
	svc := trip.NewService(api, emptyStore(), nil)

	err := svc.Update(context.Background(), "trip-123", "Lisbon", completeDates())

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", gotDest)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestUpdate_IncompleteDates(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)
	start := domain.NewDate(2025, time.July, 1)

	err := svc.Update(context.Background(), "trip-123", "Lisbon", domain.DateSelection{Start: &start})

	assert.ErrorIs(t, err, domain.ErrIncompleteDetails)
}

func TestUpdate_ShortDestination(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	err := svc.Update(context.Background(), "trip-123", "Rio", completeDates())

	assert.ErrorIs(t, err, domain.ErrDestinationTooShort)
}

func TestUpdate_RemoteErrorPropagates(t *testing.T) {
	api := &mockAPI{
		updateTrip: func(_ context.Context, _, _ string, _, _ time.Time) error {
			return domain.ErrRemoteCall
		},
	}
	svc := trip.NewService(api, emptyStore(), nil)

	err := svc.Update(context.Background(), "trip-123", "Lisbon", completeDates())

	assert.ErrorIs(t, err, domain.ErrRemoteCall)
}

// ---- ConfirmAttendance -----------------------------------------------------

func TestConfirmAttendance_TrimsAndSavesPointer(t *testing.T) {
	var gotName, gotEmail string
	api := &mockAPI{
		confirmParticipant: func(_ context.Context, participantID, name, email string) error {
			assert.Equal(t, "part-9", participantID)
			gotName, gotEmail = name, email
			return nil
		},
	}
	var savedID string
	store := &mockStore{save: func(_ context.Context, id string) error {
		savedID = id
		return nil
	}}
	svc := trip.NewService(api, store, nil)

	err := svc.ConfirmAttendance(context.Background(), "trip-123", "part-9", "  Bia Lima  ", " bia@x.com ")

	require.NoError(t, err)
	assert.Equal(t, "Bia Lima", gotName)
	assert.Equal(t, "bia@x.com", gotEmail)
	assert.Equal(t, "trip-123", savedID)
}

func TestConfirmAttendance_BlankNameRejected(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	err := svc.ConfirmAttendance(context.Background(), "trip-123", "part-9", "   ", "bia@x.com")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestConfirmAttendance_InvalidEmailRejected(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	err := svc.ConfirmAttendance(context.Background(), "trip-123", "part-9", "Bia", "not-an-email")

	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestConfirmAttendance_PointerSaveFailureIsNonFatal(t *testing.T) {
	api := &mockAPI{
		confirmParticipant: func(_ context.Context, _, _, _ string) error { return nil },
	}
	store := &mockStore{save: func(_ context.Context, _ string) error {
		return domain.ErrStorageUnavailable
	}}
	svc := trip.NewService(api, store, nil)

	err := svc.ConfirmAttendance(context.Background(), "trip-123", "part-9", "Bia", "bia@x.com")

	// Confirmation already happened remotely; losing the pointer is not fatal.
	assert.NoError(t, err)
}

// ---- links -----------------------------------------------------------------

func TestAddLink_Valid(t *testing.T) {
	api := &mockAPI{
		createLink: func(_ context.Context, tripID, title, linkURL string) (string, error) {
			assert.Equal(t, "trip-123", tripID)
			assert.Equal(t, "Hotel", title)
			assert.Equal(t, "https://hotel.example", linkURL)
			return "link-1", nil
		},
	}
	svc := trip.NewService(api, emptyStore(), nil)

	linkID, err := svc.AddLink(context.Background(), "trip-123", "Hotel", "https://hotel.example")

	require.NoError(t, err)
	assert.Equal(t, "link-1", linkID)
}

func TestAddLink_InvalidURL(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	for _, bad := range []string{"", "not a url", "ftp://host/x", "http://"} {
		_, err := svc.AddLink(context.Background(), "trip-123", "Hotel", bad)
		assert.ErrorIs(t, err, domain.ErrValidation, "url %q", bad)
	}
}

func TestAddLink_BlankTitle(t *testing.T) {
	svc := trip.NewService(&mockAPI{}, emptyStore(), nil)

	_, err := svc.AddLink(context.Background(), "trip-123", "  ", "https://hotel.example")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- SignOut ---------------------------------------------------------------

func TestSignOut_ClearsPointer(t *testing.T) {
	removed := false
	store := &mockStore{remove: func(_ context.Context) error {
		removed = true
		return nil
	}}
	svc := trip.NewService(&mockAPI{}, store, nil)

	require.NoError(t, svc.SignOut(context.Background()))
	assert.True(t, removed)
}

func TestSignOut_StorageErrorSurfaced(t *testing.T) {
	store := &mockStore{remove: func(_ context.Context) error {
		return domain.ErrStorageUnavailable
	}}
	svc := trip.NewService(&mockAPI{}, store, nil)

	err := svc.SignOut(context.Background())

	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
