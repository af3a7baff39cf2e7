// Package agenda merges the event and life-event collections into one
// display set and buckets records by calendar day. Everything here is pure:
// inputs are never mutated, so callers may invoke these per grid cell per
// render.
package agenda

import (
	"time"

	"tableflip.dev/almanac/pkg/model"
)

// ProjectLifeEvents derives one read-only Event-shaped record per life
// event: start and end are the life event's date, the note becomes the
// description, and IsLifeEvent is set so deletion can route back to the
// life-event collection. Projections are never written back.
func ProjectLifeEvents(lifeEvents []*model.LifeEvent) []*model.Event {
	projected := make([]*model.Event, 0, len(lifeEvents))
	for _, l := range lifeEvents {
		projected = append(projected, &model.Event{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Note,
			Start:       l.Date,
			End:         l.Date,
			Type:        l.Type,
			Color:       l.Color,
			IsLifeEvent: true,
		})
	}
	return projected
}

// Unify concatenates events with the life-event projections, events first.
// The order is stable but not chronological; sorting for display is the
// view layer's job.
func Unify(events []*model.Event, lifeEvents []*model.LifeEvent) []*model.Event {
	unified := make([]*model.Event, 0, len(events)+len(lifeEvents))
	unified = append(unified, events...)
	unified = append(unified, ProjectLifeEvents(lifeEvents)...)
	return unified
}

// DeleteByID removes the record with the given id, checking the life-event
// collection first. The two collections share an id-space only by accident
// of UUID generation, so the lookup order is the contract that keeps
// routing deterministic: an id found among life events never touches the
// plain events. Unknown ids are a no-op. Fresh slices are returned; the
// inputs are left as-is.
func DeleteByID(id string, events []*model.Event, lifeEvents []*model.LifeEvent) ([]*model.Event, []*model.LifeEvent, bool) {
	for i, l := range lifeEvents {
		if l.ID == id {
			remaining := make([]*model.LifeEvent, 0, len(lifeEvents)-1)
			remaining = append(remaining, lifeEvents[:i]...)
			remaining = append(remaining, lifeEvents[i+1:]...)
			return events, remaining, true
		}
	}
	for i, e := range events {
		if e.ID == id {
			remaining := make([]*model.Event, 0, len(events)-1)
			remaining = append(remaining, events[:i]...)
			remaining = append(remaining, events[i+1:]...)
			return remaining, lifeEvents, true
		}
	}
	return events, lifeEvents, false
}

// EventsOnDay returns the events whose start instant falls on the same
// local calendar day as day, preserving input order. Events spanning
// midnight appear only on their start day.
func EventsOnDay(events []*model.Event, day time.Time) []*model.Event {
	matched := make([]*model.Event, 0)
	for _, e := range events {
		if e.Start.SameDay(day) {
			matched = append(matched, e)
		}
	}
	return matched
}

// NotesOnDay returns the notes pinned to the same local calendar day as
// day, preserving input order.
func NotesOnDay(notes []*model.CalendarNote, day time.Time) []*model.CalendarNote {
	matched := make([]*model.CalendarNote, 0)
	for _, n := range notes {
		if n.On.SameDay(day) {
			matched = append(matched, n)
		}
	}
	return matched
}
