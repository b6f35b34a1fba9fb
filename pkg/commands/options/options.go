// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/day"
)

// DateOptions selects the date a command acts on, defaulting to today.
type DateOptions struct {
	OnString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Act on a specific date, example: --on="2026-08-31".`)
}

// GetOn resolves the flag, falling back to the current local date.
func (o *DateOptions) GetOn() (day.Date, error) {
	if o.OnString == "" {
		return day.Today(), nil
	}
	return day.Parse(o.OnString)
}

// GetOptions filters the listing commands.
type GetOptions struct {
	Month           string
	HighlightedOnly bool
	ShowUpdated     bool
}

func AddGetArgs(cmd *cobra.Command, o *GetOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Show a single month, example: --month="2026-08".`)
	cmd.Flags().BoolVar(&o.HighlightedOnly, "highlighted", false,
		"Show only highlighted traces.")
	cmd.Flags().BoolVar(&o.ShowUpdated, "updated", false,
		"Show the last-updated time of each trace.")
}

// RemindOptions configures the reminder loop.
type RemindOptions struct {
	At  string
	Now bool
}

func AddRemindArgs(cmd *cobra.Command, o *RemindOptions) {
	cmd.Flags().StringVar(&o.At, "at", "21:00",
		`Local time of day for the reminder, example: --at="21:00".`)
	cmd.Flags().BoolVar(&o.Now, "now", false,
		"Fire once immediately instead of looping.")
}
