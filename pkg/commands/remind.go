package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/trace/pkg/commands/options"
	"tableflip.dev/trace/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	o := &options.RemindOptions{}

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Nudge yourself daily when today's trace is missing",
		Example: `
trace remind --at="21:00"
trace remind --now
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, repo, err := loadRepo()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			s := remind.Remind{Repo: repo, At: o.At, Now: o.Now}
			return s.Do(ctx)
		},
	}

	options.AddRemindArgs(cmd, o)

	topLevel.AddCommand(cmd)
}
