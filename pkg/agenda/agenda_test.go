package agenda

import (
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleEvents() []*model.Event {
	return []*model.Event{
		model.NewEvent("standup", day(2026, time.March, 3).Add(9*time.Hour), day(2026, time.March, 3).Add(9*time.Hour+15*time.Minute), model.TypeEvent),
		model.NewEvent("dentist", day(2026, time.March, 4).Add(14*time.Hour), day(2026, time.March, 4).Add(15*time.Hour), model.TypeAppointment),
	}
}

func sampleLifeEvents() []*model.LifeEvent {
	l := model.NewLifeEvent("Mom's birthday", day(1962, time.May, 4), model.TypeBirthday)
	l.Note = "call her"
	l.RepeatsAnnually = true
	return []*model.LifeEvent{l}
}

func TestUnifyLength(t *testing.T) {
	events := sampleEvents()
	life := sampleLifeEvents()

	unified := Unify(events, life)
	if got, want := len(unified), len(events)+len(life); got != want {
		t.Fatalf("unified length = %d, want %d", got, want)
	}
}

func TestUnifyOrderAndProjection(t *testing.T) {
	events := sampleEvents()
	life := sampleLifeEvents()

	unified := Unify(events, life)
	for i, e := range events {
		if unified[i].ID != e.ID {
			t.Fatalf("events must come first; index %d has %q", i, unified[i].ID)
		}
		if unified[i].IsLifeEvent {
			t.Fatalf("plain event %q flagged as life event", e.ID)
		}
	}

	proj := unified[len(events)]
	if !proj.IsLifeEvent {
		t.Fatal("projection must carry IsLifeEvent")
	}
	if proj.ID != life[0].ID {
		t.Fatalf("projection id = %q, want %q", proj.ID, life[0].ID)
	}
	if !proj.Start.Equal(life[0].Date.Time) || !proj.End.Equal(life[0].Date.Time) {
		t.Fatal("projection start and end must both equal the life event date")
	}
	if proj.Description != "call her" {
		t.Fatalf("projection description = %q", proj.Description)
	}
}

func TestProjectLifeEventsDoesNotMutate(t *testing.T) {
	life := sampleLifeEvents()
	proj := ProjectLifeEvents(life)
	proj[0].Title = "changed"
	if life[0].Title != "Mom's birthday" {
		t.Fatal("projection must not alias the life event record")
	}
}

func TestDeleteRoutesLifeEventsFirst(t *testing.T) {
	events := sampleEvents()
	life := sampleLifeEvents()

	gotEvents, gotLife, found := DeleteByID(life[0].ID, events, life)
	if !found {
		t.Fatal("expected delete to find the life event")
	}
	if len(gotEvents) != len(events) {
		t.Fatal("deleting a life event must leave plain events untouched")
	}
	if len(gotLife) != 0 {
		t.Fatalf("life events remaining = %d, want 0", len(gotLife))
	}
}

func TestDeletePlainEvent(t *testing.T) {
	events := sampleEvents()
	life := sampleLifeEvents()

	gotEvents, gotLife, found := DeleteByID(events[0].ID, events, life)
	if !found {
		t.Fatal("expected delete to find the event")
	}
	if len(gotEvents) != 1 || gotEvents[0].ID != events[1].ID {
		t.Fatal("wrong event removed")
	}
	if len(gotLife) != 1 {
		t.Fatal("life events must be untouched")
	}
	if len(events) != 2 {
		t.Fatal("input slice must not be mutated")
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	events := sampleEvents()
	life := sampleLifeEvents()

	gotEvents, gotLife, found := DeleteByID("no-such-id", events, life)
	if found {
		t.Fatal("unknown id must not be found")
	}
	if len(gotEvents) != len(events) || len(gotLife) != len(life) {
		t.Fatal("unknown id must be a no-op on both collections")
	}
}

func TestEventsOnDay(t *testing.T) {
	events := sampleEvents()
	// Spans midnight: starts 23:59:59 March 3, ends March 4.
	late := model.NewEvent("red-eye", day(2026, time.March, 3).Add(23*time.Hour+59*time.Minute+59*time.Second), day(2026, time.March, 4).Add(6*time.Hour), model.TypeEvent)
	events = append(events, late)

	march3 := EventsOnDay(events, day(2026, time.March, 3))
	if len(march3) != 2 {
		t.Fatalf("march 3 bucket = %d events, want 2", len(march3))
	}
	if march3[0].Title != "standup" || march3[1].Title != "red-eye" {
		t.Fatal("bucket must preserve input order")
	}

	march4 := EventsOnDay(events, day(2026, time.March, 4))
	for _, e := range march4 {
		if e.ID == late.ID {
			t.Fatal("midnight-spanning event must only appear on its start day")
		}
	}
	if len(march4) != 1 {
		t.Fatalf("march 4 bucket = %d events, want 1", len(march4))
	}
}

func TestNotesOnDay(t *testing.T) {
	notes := []*model.CalendarNote{
		model.NewNote("buy flowers", day(2026, time.March, 3), "rose"),
		model.NewNote("water plants", day(2026, time.March, 4), "mint"),
	}
	got := NotesOnDay(notes, day(2026, time.March, 3))
	if len(got) != 1 || got[0].Content != "buy flowers" {
		t.Fatalf("unexpected bucket: %+v", got)
	}
}
