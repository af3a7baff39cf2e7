package view

import (
	"time"

	"tableflip.dev/almanac/pkg/agenda"
	"tableflip.dev/almanac/pkg/model"
)

// Display caps for the month grid. The numbers are presentation defaults,
// overridable through Options; they are not a correctness invariant.
const (
	MonthCap       = 3
	NarrowMonthCap = 2
)

// Options tunes range and truncation behavior for the composers.
type Options struct {
	// WeekStart is the first day of a display week. The zero value is
	// Sunday, matching DefaultWeekStart.
	WeekStart time.Weekday

	// Narrow selects the small-viewport policy: a single-day week and the
	// tighter month cap.
	Narrow bool

	// CapOverride replaces the month display cap when > 0.
	CapOverride int

	// Today overrides the notion of "now" for IsToday marking. Zero means
	// time.Now().
	Today time.Time
}

func (o Options) monthCap() int {
	if o.CapOverride > 0 {
		return o.CapOverride
	}
	if o.Narrow {
		return NarrowMonthCap
	}
	return MonthCap
}

func (o Options) today() time.Time {
	if o.Today.IsZero() {
		return time.Now()
	}
	return o.Today
}

// DayCell is one grid cell: a day with its bucketed events and notes.
// Overflow counts how many events were truncated by the display cap, shown
// as "+K more".
type DayCell struct {
	Day      time.Time
	InMonth  bool
	IsToday  bool
	Events   []*model.Event
	Notes    []*model.CalendarNote
	Overflow int
}

// WeekView is the composed week: seven day cells, or one when narrow.
// Week cells are never truncated.
type WeekView struct {
	Anchor time.Time
	Days   []DayCell
}

// MonthView is the composed month grid in week rows.
type MonthView struct {
	Anchor time.Time
	Weeks  [][]DayCell
}

// MonthSummary is one month of the year view: counts only, no items.
type MonthSummary struct {
	Month      time.Time
	EventCount int
	NoteCount  int
}

// YearView is the composed year: twelve month summaries.
type YearView struct {
	Anchor time.Time
	Months []MonthSummary
}

// ComposeWeek buckets events and notes onto the week containing anchor.
func ComposeWeek(events []*model.Event, notes []*model.CalendarNote, anchor time.Time, opts Options) WeekView {
	var days []time.Time
	if opts.Narrow {
		days = []time.Time{dayOf(anchor)}
	} else {
		days = WeekRange(anchor, opts.WeekStart)
	}

	view := WeekView{Anchor: anchor}
	for _, d := range days {
		view.Days = append(view.Days, makeCell(events, notes, d, anchor.Month(), opts.today(), 0))
	}
	return view
}

// ComposeMonth buckets events and notes onto the full-week month grid for
// anchor, truncating each cell to the display cap.
func ComposeMonth(events []*model.Event, notes []*model.CalendarNote, anchor time.Time, opts Options) MonthView {
	days := MonthRange(anchor, opts.WeekStart)
	limit := opts.monthCap()

	view := MonthView{Anchor: anchor}
	for i := 0; i < len(days); i += 7 {
		var week []DayCell
		for _, d := range days[i : i+7] {
			week = append(week, makeCell(events, notes, d, anchor.Month(), opts.today(), limit))
		}
		view.Weeks = append(view.Weeks, week)
	}
	return view
}

// ComposeYear produces per-month counts for anchor's year. Individual items
// are not surfaced; drilling into a month goes through ComposeMonth.
func ComposeYear(events []*model.Event, notes []*model.CalendarNote, anchor time.Time, opts Options) YearView {
	view := YearView{Anchor: anchor}
	for _, month := range YearAnchors(anchor) {
		summary := MonthSummary{Month: month}
		for _, e := range events {
			if e.Start.SameMonth(month) {
				summary.EventCount++
			}
		}
		for _, n := range notes {
			if n.On.SameMonth(month) {
				summary.NoteCount++
			}
		}
		view.Months = append(view.Months, summary)
	}
	return view
}

func makeCell(events []*model.Event, notes []*model.CalendarNote, day time.Time, month time.Month, today time.Time, limit int) DayCell {
	cell := DayCell{
		Day:     day,
		InMonth: day.Month() == month,
		IsToday: model.At(day).SameDay(today),
		Events:  agenda.EventsOnDay(events, day),
		Notes:   agenda.NotesOnDay(notes, day),
	}
	if limit > 0 && len(cell.Events) > limit {
		cell.Overflow = len(cell.Events) - limit
		cell.Events = cell.Events[:limit]
	}
	return cell
}
