package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/runner/year"
)

func addYear(topLevel *cobra.Command) {
	var width int

	cmd := &cobra.Command{
		Use:   "year",
		Short: "Show how much of the year has elapsed",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := year.Year{Width: width}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Bar width in cells.")

	topLevel.AddCommand(cmd)
}
