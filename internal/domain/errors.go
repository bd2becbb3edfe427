package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the remote service reports that the requested
// resource (trip, participant) does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is the root of all local validation failures. Every specific
// validation error below wraps it, so callers can match either the broad
// category (errors.Is(err, ErrValidation)) or the exact rule.
// Validation errors block a transition and are surfaced for user correction;
// they are never fatal.
var ErrValidation = errors.New("validation error")

// ErrIncompleteDetails is returned by the wizard when the destination is empty
// or the date range is missing one or both bounds.
var ErrIncompleteDetails = fmt.Errorf("%w: trip details are incomplete", ErrValidation)

// ErrDestinationTooShort is returned by the wizard when the destination has
// fewer than four characters.
var ErrDestinationTooShort = fmt.Errorf("%w: destination must have at least 4 characters", ErrValidation)

// ErrInvalidEmail is returned by the guest list when a candidate address does
// not match the accepted email grammar.
var ErrInvalidEmail = fmt.Errorf("%w: invalid email address", ErrValidation)

// ErrDuplicateEmail is returned by the guest list when the exact address is
// already on the list.
var ErrDuplicateEmail = fmt.Errorf("%w: email already invited", ErrValidation)

// ErrRemoteCall wraps any failure talking to the remote trip service
// (transport error or non-2xx response). It is retryable: the wizard moves to
// its failed state and the user may try again without re-entering data.
var ErrRemoteCall = errors.New("remote call failed")

// ErrStorageUnavailable wraps any failure of the on-device session store.
// Callers treat it as non-fatal and fall back to the "no active trip" path.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrNoActiveTrip is returned by the session store when no trip pointer is
// saved. It is the normal first-launch condition, not a failure.
var ErrNoActiveTrip = errors.New("no active trip")
