package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/day"
	"tableflip.dev/trace/pkg/runner/highlight"
)

func addHighlight(topLevel *cobra.Command) {
	off := false

	cmd := &cobra.Command{
		Use:   "highlight <date>",
		Short: "Mark a day's trace as a highlight",
		Example: `
trace highlight 2026-08-30
trace highlight 2026-08-30 --off
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := day.Parse(args[0])
			if err != nil {
				return err
			}
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := highlight.Highlight{
				Repo: repo,
				Date: on,
				On:   !off,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Remove the highlight instead of setting it.")

	topLevel.AddCommand(cmd)
}
