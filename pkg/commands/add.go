package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
almanac add event "Dentist" --on 2026-9-12 --at 14:30 --end 15:00 --type appointment
almanac add note "Buy flowers" --on 9/12 --color rose --pin
almanac add goal "Run 100km" --category health --due 2026-12-31
almanac add life "Mom's birthday" --on 1962-5-4 --type birthday --annual --icon cake
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddEvent(cmd)
	addAddNote(cmd)
	addAddGoal(cmd)
	addAddLife(cmd)

	topLevel.AddCommand(cmd)
}

func addAddEvent(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	to := &options.TimeOfDayOptions{}
	eo := &options.EventOptions{}

	cmd := &cobra.Command{
		Use:   "event TITLE",
		Short: "Add a scheduled event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := oo.GetOnOrToday()
			if err != nil {
				return err
			}
			start, end, err := to.Resolve(day)
			if err != nil {
				return err
			}
			typ, err := model.ParseType(eo.Type)
			if err != nil {
				return err
			}
			priority, err := model.ParsePriority(eo.Priority)
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := add.Event{
				Title:       strings.Join(args, " "),
				Start:       start,
				End:         end,
				Type:        typ,
				Color:       eo.Color,
				Location:    eo.Location,
				Description: eo.Description,
				Recurrence:  eo.Recurrence,
				Priority:    priority,
				Service:     svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddTimeOfDayArgs(cmd, to)
	options.AddEventArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addAddNote(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var noteColor string
	var pinned bool

	cmd := &cobra.Command{
		Use:   "note CONTENT",
		Short: "Add a sticky note to a day",
		Long:  "Colors: " + strings.Join(model.NoteColors, ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := oo.GetOnOrToday()
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := add.Note{
				Content: strings.Join(args, " "),
				On:      day,
				Color:   noteColor,
				Pinned:  pinned,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVar(&noteColor, "color", model.DefaultNoteColor, "Palette color.")
	cmd.Flags().BoolVar(&pinned, "pin", false, "Pin the note.")

	topLevel.AddCommand(cmd)
}

func addAddGoal(topLevel *cobra.Command) {
	var category string
	var progress int
	var due string

	cmd := &cobra.Command{
		Use:   "goal TITLE",
		Short: "Add a progress goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := model.ParseCategory(category)
			if err != nil {
				return err
			}
			s := add.Goal{
				Title:    strings.Join(args, " "),
				Category: cat,
				Progress: progress,
			}
			if due != "" {
				do := &options.OnOptions{OnString: due}
				t, err := do.GetOn()
				if err != nil {
					return err
				}
				s.Due = t
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s.Service = svc
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "",
		"Category: personal, work, health, learning.")
	cmd.Flags().IntVar(&progress, "progress", 0, "Initial progress, 0-100.")
	cmd.Flags().StringVar(&due, "due", "", `Due date, example: --due="2026-12-31".`)

	topLevel.AddCommand(cmd)
}

func addAddLife(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var typ, note, lifeColor, icon string
	var annual bool

	cmd := &cobra.Command{
		Use:   "life TITLE",
		Short: "Add a life event (birthday, anniversary, holiday, special)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := oo.GetOnOrToday()
			if err != nil {
				return err
			}
			t, err := model.ParseLifeEventType(typ)
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := add.Life{
				Title:   strings.Join(args, " "),
				On:      day,
				Type:    t,
				Note:    note,
				Color:   lifeColor,
				Icon:    icon,
				Annual:  annual,
				Service: svc,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVarP(&typ, "type", "t", "", "birthday, anniversary, holiday or special.")
	cmd.Flags().StringVar(&note, "note", "", "Optional note.")
	cmd.Flags().StringVar(&lifeColor, "color", "", "Display color.")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon selector, example: cake.")
	cmd.Flags().BoolVar(&annual, "annual", false, "Repeats every year.")

	topLevel.AddCommand(cmd)
}
