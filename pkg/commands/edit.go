package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/almanac/pkg/commands/options"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a record by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditEvent(cmd)
	addEditNote(cmd)
	addEditLife(cmd)

	topLevel.AddCommand(cmd)
}

func addEditEvent(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	to := &options.TimeOfDayOptions{}
	eo := &options.EventOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "event ID",
		Short: "Edit a scheduled event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ := model.Type("")
			if eo.Type != "" {
				var err error
				typ, err = model.ParseType(eo.Type)
				if err != nil {
					return err
				}
			}
			priority := model.PriorityNone
			if eo.Priority != "" {
				var err error
				priority, err = model.ParsePriority(eo.Priority)
				if err != nil {
					return err
				}
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := edit.Event{
				ID:          args[0],
				Title:       title,
				Type:        typ,
				Color:       eo.Color,
				Location:    eo.Location,
				Description: eo.Description,
				Recurrence:  eo.Recurrence,
				Priority:    priority,
				Service:     svc,
			}
			if on, err := oo.GetOn(); err != nil {
				return err
			} else if on != nil {
				start, end, err := to.Resolve(*on)
				if err != nil {
					return err
				}
				s.Start = &start
				s.End = &end
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddOnArgs(cmd, oo)
	options.AddTimeOfDayArgs(cmd, to)
	options.AddEventArgs(cmd, eo)

	topLevel.AddCommand(cmd)
}

func addEditNote(topLevel *cobra.Command) {
	var content, noteColor string
	var pin, unpin bool

	cmd := &cobra.Command{
		Use:   "note ID",
		Short: "Edit a sticky note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := edit.Note{
				ID:      args[0],
				Content: content,
				Color:   noteColor,
				Service: svc,
			}
			if pin || unpin {
				pinned := pin
				s.Pin = &pinned
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "New content.")
	cmd.Flags().StringVar(&noteColor, "color", "", "Palette color.")
	cmd.Flags().BoolVar(&pin, "pin", false, "Pin the note.")
	cmd.Flags().BoolVar(&unpin, "unpin", false, "Unpin the note.")

	topLevel.AddCommand(cmd)
}

func addEditLife(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var title, typ, note, icon string
	var annual, oneShot bool

	cmd := &cobra.Command{
		Use:   "life ID",
		Short: "Edit a life event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := model.Type("")
			if typ != "" {
				var err error
				t, err = model.ParseLifeEventType(typ)
				if err != nil {
					return err
				}
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := edit.Life{
				ID:      args[0],
				Title:   title,
				Type:    t,
				Note:    note,
				Icon:    icon,
				Service: svc,
			}
			if on, err := oo.GetOn(); err != nil {
				return err
			} else if on != nil {
				s.On = on
			}
			if annual || oneShot {
				repeats := annual
				s.Annual = &repeats
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddOnArgs(cmd, oo)
	cmd.Flags().StringVarP(&typ, "type", "t", "", "birthday, anniversary, holiday or special.")
	cmd.Flags().StringVar(&note, "note", "", "New note.")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon.")
	cmd.Flags().BoolVar(&annual, "annual", false, "Repeats every year.")
	cmd.Flags().BoolVar(&oneShot, "once", false, "Does not repeat.")

	topLevel.AddCommand(cmd)
}
