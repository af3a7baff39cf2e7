// Package commands wires the almanac CLI.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/store"
)

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "almanac",
		Short: base.Wrap80("A local-first calendar with events, sticky notes, goals and life events."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every verb on the root.
func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addView(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addProgress(topLevel)
	addExport(topLevel)
	addYear(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// newService loads config, opens the store and primes the in-memory
// collections.
func newService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return app.New(p), cfg, nil
}
