// Package guestlist implements the wizard's invitee collection: an ordered,
// duplicate-free list of validated email addresses.
package guestlist

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/jmoraes/planner/internal/domain"
)

// emailRE accepts the conventional address shape: a local part, "@", and a
// domain containing at least one dot. Whitespace anywhere in the candidate is
// rejected; Validate does not trim.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate reports whether candidate is an acceptable invite address.
func Validate(candidate string) bool {
	return emailRE.MatchString(candidate)
}

// List is the guest invite list of one in-progress trip. The zero value is
// an empty list ready to use.
//
// Entries are unique under case-sensitive exact match and keep insertion
// order for display. Addresses are stored exactly as entered, with no
// trimming or case folding, so "A@x.com" and "a@x.com" are two different
// guests.
type List struct {
	emails []string
}

// Add validates candidate and appends it to the list.
// Returns domain.ErrInvalidEmail when the address does not parse and
// domain.ErrDuplicateEmail when it is already present. On error the list is
// unchanged.
func (l *List) Add(candidate string) error {
	if !Validate(candidate) {
		return fmt.Errorf("guestlist.List.Add: %w", domain.ErrInvalidEmail)
	}
	if l.Contains(candidate) {
		return fmt.Errorf("guestlist.List.Add: %w", domain.ErrDuplicateEmail)
	}
	l.emails = append(l.emails, candidate)
	return nil
}

// Remove deletes target from the list. Removing an address that is not on
// the list is a no-op, not an error.
func (l *List) Remove(target string) {
	l.emails = slices.DeleteFunc(l.emails, func(e string) bool { return e == target })
}

// Contains reports whether target is on the list (exact match).
func (l *List) Contains(target string) bool {
	return slices.Contains(l.emails, target)
}

// Len returns the number of invited guests.
func (l *List) Len() int { return len(l.emails) }

// Emails returns the invited addresses in insertion order. The returned
// slice is a copy; mutating it does not affect the list.
func (l *List) Emails() []string {
	return slices.Clone(l.emails)
}
