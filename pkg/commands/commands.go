package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/trace/pkg/journal"
	"tableflip.dev/trace/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "trace",
		Short: base.Wrap80("One small trace of every day, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addToday(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addHighlight(topLevel)
	addDelete(topLevel)
	addStreak(topLevel)
	addPrompt(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addRemind(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// loadRepo wires one store handle into one repository; commands pass both
// down instead of reaching for any ambient state.
func loadRepo() (store.Persistence, *journal.Repository, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	return p, journal.New(p), nil
}
