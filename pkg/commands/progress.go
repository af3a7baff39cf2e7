package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/runner/progress"
)

func addProgress(topLevel *cobra.Command) {
	var set int

	cmd := &cobra.Command{
		Use:   "progress ID [DELTA]",
		Short: "Adjust a goal's progress",
		Long: "Apply a signed delta to a goal's progress, or set it with --set.\n" +
			"Progress is clamped to 0-100 on every update.",
		Args: cobra.RangeArgs(1, 2),
		Example: `
almanac progress GOAL-ID +10
almanac progress GOAL-ID -- -5
almanac progress GOAL-ID --set 75
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := progress.Progress{ID: args[0]}
			if cmd.Flags().Changed("set") {
				s.Set = &set
			} else {
				if len(args) < 2 {
					return fmt.Errorf("need a delta or --set")
				}
				delta, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid delta %q: %w", args[1], err)
				}
				s.Delta = delta
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s.Service = svc
			return s.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&set, "set", 0, "Set progress to an absolute value.")

	topLevel.AddCommand(cmd)
}
