package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	tuiapp "tableflip.dev/almanac/pkg/tui/app"
	"tableflip.dev/almanac/pkg/view"
)

func addUI(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Long: "Open a full-screen month navigator. The view follows the store:\n" +
			"changes written by other almanac processes show up live.",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return tuiapp.Run(svc, opts)
		},
	}

	options.AddViewArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}
