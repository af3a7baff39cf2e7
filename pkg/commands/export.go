package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events to an iCalendar file",
		Example: `
almanac export
almanac export --out events.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := export.Export{Out: out, Service: svc}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default almanac.ics).")

	topLevel.AddCommand(cmd)
}
