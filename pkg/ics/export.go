// Package ics serializes the unified event collection to an iCalendar
// document.
package ics

import (
	"fmt"
	"io"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"

	"tableflip.dev/almanac/pkg/model"
)

const prodID = "-//almanac//calendar export//EN"

// Export writes the events as VEVENTs. Life-event projections become
// all-day events. Recurrence tags are exported verbatim; expansion is the
// consuming calendar's job.
func Export(w io.Writer, events []*model.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		if e.Start.IsZero() {
			fmt.Fprintf(os.Stderr, "ics: skipping %q: invalid start date\n", e.Title)
			continue
		}

		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}

		if e.IsLifeEvent {
			ve.SetAllDayStartAt(e.Start.Local())
			ve.SetAllDayEndAt(e.Start.Local().AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.Start.Time)
			end := e.End.Time
			if e.End.IsZero() {
				end = e.Start.Time
			}
			ve.SetEndAt(end)
		}

		if e.Recurrence != "" {
			ve.AddRrule(e.Recurrence)
		}
	}

	return cal.SerializeTo(w)
}

// ExportFile writes the calendar to path, creating or truncating it.
func ExportFile(path string, events []*model.Event, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ics: create %s: %w", path, err)
	}
	defer f.Close()

	if err := Export(f, events, now); err != nil {
		return fmt.Errorf("ics: export: %w", err)
	}
	return nil
}
