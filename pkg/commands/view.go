package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	runner "tableflip.dev/almanac/pkg/runner/view"
	"tableflip.dev/almanac/pkg/view"
)

func addView(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:       "view [week|month|year]",
		Short:     "Show the composed week, month or year",
		ValidArgs: []string{"week", "month", "year"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
almanac view month
almanac view week --on 2026-9-12
almanac view month --narrow
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			granularity := runner.Month
			if len(args) == 1 {
				switch args[0] {
				case "week", "month", "year":
					granularity = runner.Granularity(args[0])
				default:
					return fmt.Errorf("unknown view %q", args[0])
				}
			}
			anchor, err := oo.GetOnOrToday()
			if err != nil {
				return err
			}
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			opts := view.Options{
				WeekStart:   cfg.WeekStart(),
				Narrow:      vo.Narrow,
				CapOverride: vo.Cap,
			}
			if opts.CapOverride == 0 {
				opts.CapOverride = cfg.MonthCap()
			}
			s := runner.View{
				Granularity: granularity,
				Anchor:      anchor,
				Options:     opts,
				Service:     svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
