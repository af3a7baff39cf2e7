// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
	layoutClock    = "15:04"
)

// OnOptions carries the anchor/target date flag.
type OnOptions struct {
	OnString string
}

// AddOnArgs wires the --on flag.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-9-12" or --on="9/12".`)
}

// GetOn parses --on. Nil means the flag was not set.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the current one for the short form.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
	}
	return &t, nil
}

// GetOnOrToday parses --on, falling back to today.
func (o *OnOptions) GetOnOrToday() (time.Time, error) {
	t, err := o.GetOn()
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Now(), nil
	}
	return *t, nil
}

// TimeOfDayOptions carries the start/end clock-time flags used with --on.
type TimeOfDayOptions struct {
	AtString  string
	EndString string
}

// AddTimeOfDayArgs wires the --at and --end flags.
func AddTimeOfDayArgs(cmd *cobra.Command, o *TimeOfDayOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Start time of day, example: --at="14:30".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`End time of day, example: --end="15:00".`)
}

// Resolve combines the day with the --at/--end clock times. Without --at
// the event starts at midnight; without --end it ends when it starts.
func (o *TimeOfDayOptions) Resolve(day time.Time) (start, end time.Time, err error) {
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	if o.AtString != "" {
		clock, perr := time.Parse(layoutClock, o.AtString)
		if perr != nil {
			return start, end, fmt.Errorf("invalid --at %q: %w", o.AtString, perr)
		}
		start = start.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
	}
	end = start
	if o.EndString != "" {
		clock, perr := time.Parse(layoutClock, o.EndString)
		if perr != nil {
			return start, end, fmt.Errorf("invalid --end %q: %w", o.EndString, perr)
		}
		end = time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	}
	return start, end, nil
}
