// Package view computes the visible date ranges for the week, month and
// year views and overlays day buckets onto them. Composers hold no state;
// every view is re-derived from the anchor date and the current
// collections on each call.
package view

import "time"

// DefaultWeekStart is the first day of a display week. Locale-defined in
// principle; Sunday in this design.
const DefaultWeekStart = time.Sunday

// StartOfWeek returns midnight of the week-start on or before anchor.
func StartOfWeek(anchor time.Time, weekStart time.Weekday) time.Time {
	anchor = dayOf(anchor)
	offset := (int(anchor.Weekday()) - int(weekStart) + 7) % 7
	return anchor.AddDate(0, 0, -offset)
}

// WeekRange returns the 7 days starting at the week-start of anchor.
func WeekRange(anchor time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(anchor, weekStart)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthRange returns every calendar day from the week-start of the month's
// first day through the week-end of the month's last day, so partial
// leading and trailing weeks from adjacent months are included.
func MonthRange(anchor time.Time, weekStart time.Weekday) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)

	start := StartOfWeek(first, weekStart)
	end := StartOfWeek(last, weekStart).AddDate(0, 0, 6)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// YearAnchors returns the 12 month-start anchors of anchor's year. Per-month
// day enumeration is delegated to MonthRange when a month is drilled into.
func YearAnchors(anchor time.Time) []time.Time {
	months := make([]time.Time, 12)
	for i := range months {
		months[i] = time.Date(anchor.Year(), time.Month(i+1), 1, 0, 0, 0, 0, anchor.Location())
	}
	return months
}

func dayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
