package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a record by id",
		Long: "Remove the record with the given id. Event ids are routed to the\n" +
			"life-event collection first; sticky notes and goals are checked after\n" +
			"events. Unknown ids are reported, not errors.",
		Args: cobra.ExactArgs(1),
		Example: `
almanac remove 171dff69-f8b9-9dca-0000-000000000000
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := remove.Remove{ID: args[0], Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
