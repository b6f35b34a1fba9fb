// Package day provides a timezone-independent calendar date, encoded as the
// number of days since the Unix epoch. It is the natural key for journal
// entries and the unit the streak and prompt logic count in.
package day

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Date is an epoch-day: days since 1970-01-01. The zero value is the epoch
// itself. Arithmetic on a Date never consults a timezone; only conversions
// to and from time.Time do.
type Date int

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	// Midnight UTC of a civil date is always an exact multiple of 86400,
	// so this division is exact for dates before 1970 too.
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// Today returns the current date in the local timezone.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads an ISO date such as "2026-08-31".
func Parse(s string) (Date, error) {
	t, err := time.Parse(layoutISO, s)
	if err != nil {
		return 0, fmt.Errorf("day: parse %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Add returns the date n days after d. n may be negative.
func (d Date) Add(n int) Date {
	return d + Date(n)
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	u := time.Unix(int64(d)*86400, 0).UTC()
	y, m, dd := u.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}

// Date splits d into its civil components.
func (d Date) Date() (year int, month time.Month, dayOfMonth int) {
	return d.Time(time.UTC).Date()
}

// Weekday reports the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Format renders d with a time.Layout string.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

func (d Date) String() string {
	return d.Format(layoutISO)
}

// NextMidnight returns the first local-midnight boundary strictly after now,
// in now's location.
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}
