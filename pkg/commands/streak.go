package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/commands/options"
	"tableflip.dev/trace/pkg/runner/streak"
)

func addStreak(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Count consecutive traced days",
		Example: `
trace streak
trace streak --on="2026-08-30"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := streak.Streak{Repo: repo, Date: on}
			return s.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
