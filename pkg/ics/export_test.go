package ics

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/agenda"
	"tableflip.dev/almanac/pkg/model"
)

func TestExport(t *testing.T) {
	start := time.Date(2026, time.September, 12, 14, 30, 0, 0, time.UTC)
	e := model.NewEvent("Dentist", start, start.Add(time.Hour), model.TypeAppointment)
	e.Location = "12 High St"
	e.Recurrence = "FREQ=MONTHLY"

	l := model.NewLifeEvent("Mom's birthday", time.Date(1962, time.May, 4, 0, 0, 0, 0, time.UTC), model.TypeBirthday)
	l.Note = "call her"

	var buf strings.Builder
	if err := Export(&buf, agenda.Unify([]*model.Event{e}, []*model.LifeEvent{l}), start); err != nil {
		t.Fatalf("export: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:Dentist",
		"LOCATION:12 High St",
		"RRULE:FREQ=MONTHLY",
		"SUMMARY:Mom's birthday",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestExportSkipsInvalidDates(t *testing.T) {
	e := &model.Event{ID: "x", Title: "broken", Type: model.TypeEvent}

	var buf strings.Builder
	if err := Export(&buf, []*model.Event{e}, time.Now()); err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(buf.String(), "broken") {
		t.Fatal("events with invalid dates must be skipped, not exported")
	}
}
