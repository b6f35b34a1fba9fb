// Package entry defines the journal entry model and its durable encoding.
package entry

import (
	"strings"
	"time"

	"tableflip.dev/trace/pkg/day"
)

// Entry is one journal record for exactly one calendar date.
type Entry struct {
	Date        day.Date
	Text        string
	Highlighted bool
	Created     time.Time
	Updated     time.Time
}

// New builds a fresh entry for date. Text is trimmed; Created and Updated
// start equal.
func New(date day.Date, text string, now time.Time) Entry {
	return Entry{
		Date:    date,
		Text:    strings.TrimSpace(text),
		Created: now,
		Updated: now,
	}
}

// FirstLine returns the first line of the entry text, for list views.
func (e Entry) FirstLine() string {
	if i := strings.IndexByte(e.Text, '\n'); i >= 0 {
		return e.Text[:i]
	}
	return e.Text
}

// Equal reports structural equality, comparing timestamps by instant.
func (e Entry) Equal(other Entry) bool {
	return e.Date == other.Date &&
		e.Text == other.Text &&
		e.Highlighted == other.Highlighted &&
		e.Created.Equal(other.Created) &&
		e.Updated.Equal(other.Updated)
}
