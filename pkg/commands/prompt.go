package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/commands/options"
	"tableflip.dev/trace/pkg/runner/prompt"
)

func addPrompt(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Show the writing prompt for a day",
		Example: `
trace prompt
trace prompt --on="2026-09-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := do.GetOn()
			if err != nil {
				return err
			}
			s := prompt.Prompt{Date: on}
			return s.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
