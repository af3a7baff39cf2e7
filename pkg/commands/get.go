package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "get [events|notes|goals|life]",
		Short:     "List a collection",
		ValidArgs: []string{"events", "notes", "goals", "life"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
almanac get events
almanac get events --on 2026-9-12
almanac get goals --show-ids
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := get.KindEvents
			if len(args) == 1 {
				switch args[0] {
				case "events", "notes", "goals", "life":
					kind = get.Kind(args[0])
				default:
					return fmt.Errorf("unknown collection %q", args[0])
				}
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := get.Get{
				Kind:    kind,
				On:      on,
				ShowID:  io.ShowID,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
