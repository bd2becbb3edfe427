package domain

import "time"

// Trip is the remote service's record of a trip. JSON tags follow the
// service's wire contract.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
}

// Participant is one invited guest of a trip, as reported by the
// participants service.
type Participant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsConfirmed bool   `json:"is_confirmed"`
}

// Link is a shared URL attached to a trip.
type Link struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Owner identifies the user creating a trip. The values come from the auth
// provider's cached token or from configuration; the engine only forwards
// them to the remote service.
type Owner struct {
	Name  string
	Email string
}

// TripDraft is a fully validated trip ready for the remote creation call.
// The wizard builds it; the API client serializes it.
type TripDraft struct {
	Destination  string
	StartsAt     time.Time
	EndsAt       time.Time
	InviteEmails []string
	Owner        Owner
}
