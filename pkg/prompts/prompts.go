// Package prompts rotates through a fixed set of writing prompts, one per
// calendar day. Purely cosmetic placeholder text for the editor.
package prompts

import "tableflip.dev/trace/pkg/day"

var list = []string{
	"What stayed with you today?",
	"What softened you?",
	"What surprised you?",
	"What challenged you gently?",
	"What felt alive?",
	"What did you learn quietly?",
	"What did you let go of?",
	"What felt enough today?",
	"What felt like calm?",
	"What deserves to be remembered?",
}

// ForDate returns the prompt for a date. Deterministic: the same date always
// yields the same prompt.
func ForDate(d day.Date) string {
	idx := int(d) % len(list)
	if idx < 0 {
		idx = -idx
	}
	return list[idx]
}

// Today returns the prompt for the current local date.
func Today() string {
	return ForDate(day.Today())
}
