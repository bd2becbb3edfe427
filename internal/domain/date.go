// Package domain contains the core data types for the trip planner engine.
// This package has zero heavy dependencies and is imported by every other
// internal package (daterange, wizard, session, tripapi).
package domain

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day or timezone component.
// The calendar picker and the range selector operate purely on Dates;
// conversion to timestamps happens only at the remote-service boundary.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a time.Time to the calendar day it falls on, in the
// location carried by t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO day string ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("domain.ParseDate: %w", err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the day. This is the canonical instant used
// when a Date must cross the wire as an ISO-8601 timestamp.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// ISO returns the day formatted as "2006-01-02", the key format of the
// marked-date set.
func (d Date) ISO() string {
	return d.Time().Format("2006-01-02")
}

// String implements fmt.Stringer using the ISO form.
func (d Date) String() string { return d.ISO() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d falls chronologically before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d falls chronologically after other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Next returns the following calendar day, rolling over months and years.
func (d Date) Next() Date {
	return DateOf(d.Time().AddDate(0, 0, 1))
}
