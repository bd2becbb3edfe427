package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoraes/planner/internal/domain"
)

// UserMessage turns an engine error into the line shown to the user.
// Wrapped call-site prefixes ("trip.Service.Update: ") and the validation
// sentinel prefix are stripped so only the human-readable part remains,
// e.g. "wizard.Wizard.Advance: validation error: trip details are
// incomplete" becomes "trip details are incomplete".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "trip not found; it may have been deleted"
	case errors.Is(err, domain.ErrRemoteCall):
		return "could not reach the trip service; check your connection and try again"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return "could not access this device's storage"
	}

	msg := err.Error()
	// Call-site prefixes are "pkg.Type.Method: "; drop each in turn.
	for {
		idx := strings.Index(msg, ": ")
		if idx < 0 {
			break
		}
		head := msg[:idx]
		if strings.Count(head, ".") != 2 || strings.ContainsAny(head, " \t") {
			break
		}
		msg = msg[idx+2:]
	}
	msg = strings.TrimPrefix(msg, "validation error: ")
	return msg
}

// Execute runs the planner command tree and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "planner: %s\n", UserMessage(err))
		return 1
	}
	return 0
}
