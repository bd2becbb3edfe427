// Package session persists the device's single active-trip pointer.
//
// The pointer is a one-slot, last-write-wins value: at most one trip id is
// active per device at a time. It is read once at launch to decide between
// resuming an existing trip and starting creation, written on successful
// creation or participant confirmation, and cleared on sign-out.
package session

import "context"

// Key is the fixed slot name of the active-trip pointer.
const Key = "planner:tripId"

// Store is the durable key-value boundary the engine depends on. The
// concrete implementation is SQLite; tests may substitute their own.
//
// Every method may fail with an error wrapping domain.ErrStorageUnavailable.
// Callers must treat that as non-fatal and fall back to the "no active
// trip" path rather than blocking the app.
type Store interface {
	// Save overwrites the pointer unconditionally.
	Save(ctx context.Context, tripID string) error

	// Get returns the current pointer, or domain.ErrNoActiveTrip when the
	// slot is empty.
	Get(ctx context.Context) (string, error)

	// Remove clears the pointer. Clearing an empty slot is a no-op.
	Remove(ctx context.Context) error
}
