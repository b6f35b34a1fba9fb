package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/commands/options"
	"tableflip.dev/trace/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Save or replace the trace for a day",
		Example: `
trace add a quiet walk in the rain
trace add --on="2026-08-30" caught up with an old friend
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the trace text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			s := add.Add{
				Repo: repo,
				Date: on,
				Text: strings.Join(args, " "),
			}
			return s.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
