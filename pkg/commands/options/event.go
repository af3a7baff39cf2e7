package options

import "github.com/spf13/cobra"

// EventOptions carries the optional event fields shared by add and edit.
type EventOptions struct {
	Type        string
	Color       string
	Location    string
	Description string
	Recurrence  string
	Priority    string
}

// AddEventArgs wires the event field flags.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Event type: event, task, appointment, birthday, anniversary, holiday, special.")
	cmd.Flags().StringVar(&o.Color, "color", "", "Display color.")
	cmd.Flags().StringVarP(&o.Location, "location", "l", "", "Where it happens.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "", "Longer description.")
	cmd.Flags().StringVar(&o.Recurrence, "repeat", "",
		`Recurrence tag (RRULE), stored but not expanded, example: --repeat="FREQ=WEEKLY".`)
	cmd.Flags().StringVar(&o.Priority, "priority", "", "Priority: low, medium, high.")
}

// ViewOptions carries view shaping flags.
type ViewOptions struct {
	Narrow bool
	Cap    int
}

// AddViewArgs wires the --narrow and --cap flags.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Narrow, "narrow", false,
		"Use the small-viewport policy: single-day week, tighter month cap.")
	cmd.Flags().IntVar(&o.Cap, "cap", 0,
		"Override the month display cap (0 uses the default).")
}
