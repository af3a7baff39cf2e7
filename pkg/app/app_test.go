package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/store"
)

// fakeStore is an in-memory Persistence for tests.
type fakeStore struct {
	events     []*model.Event
	notes      []*model.CalendarNote
	lifeEvents []*model.LifeEvent
	goals      []*model.Goal

	failSaves bool
	saves     int
}

func (f *fakeStore) Events() []*model.Event         { return f.events }
func (f *fakeStore) Notes() []*model.CalendarNote   { return f.notes }
func (f *fakeStore) LifeEvents() []*model.LifeEvent { return f.lifeEvents }
func (f *fakeStore) Goals() []*model.Goal           { return f.goals }

func (f *fakeStore) SaveEvents(events []*model.Event) error {
	if err := f.maybeFail(); err != nil {
		return err
	}
	f.events = events
	return nil
}

func (f *fakeStore) SaveNotes(notes []*model.CalendarNote) error {
	if err := f.maybeFail(); err != nil {
		return err
	}
	f.notes = notes
	return nil
}

func (f *fakeStore) SaveLifeEvents(lifeEvents []*model.LifeEvent) error {
	if err := f.maybeFail(); err != nil {
		return err
	}
	f.lifeEvents = lifeEvents
	return nil
}

func (f *fakeStore) SaveGoals(goals []*model.Goal) error {
	if err := f.maybeFail(); err != nil {
		return err
	}
	f.goals = goals
	return nil
}

func (f *fakeStore) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func (f *fakeStore) maybeFail() error {
	f.saves++
	if f.failSaves {
		return errors.New("disk full")
	}
	return nil
}

func newService(f *fakeStore) *Service {
	return New(f)
}

func TestCreateEventWritesThrough(t *testing.T) {
	f := &fakeStore{}
	s := newService(f)

	e := model.NewEvent("standup", time.Now(), time.Now().Add(time.Hour), model.TypeEvent)
	s.CreateEvent(e)

	if len(f.events) != 1 || f.events[0].ID != e.ID {
		t.Fatalf("store not mirrored: %+v", f.events)
	}
}

func TestCreateAssignsID(t *testing.T) {
	s := newService(&fakeStore{})
	e := s.CreateEvent(&model.Event{Title: "untitled"})
	if e.ID == "" {
		t.Fatal("create must assign an id")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	f := &fakeStore{}
	s := newService(f)
	before := f.saves

	e := model.NewEvent("ghost", time.Now(), time.Now(), model.TypeEvent)
	if s.UpdateEvent(e) {
		t.Fatal("unknown id must not update")
	}
	if f.saves != before {
		t.Fatal("no-op update must not hit the store")
	}
}

func TestDeleteRoutesToLifeEvents(t *testing.T) {
	l := model.NewLifeEvent("birthday", time.Now(), model.TypeBirthday)
	e := model.NewEvent("standup", time.Now(), time.Now(), model.TypeEvent)
	f := &fakeStore{events: []*model.Event{e}, lifeEvents: []*model.LifeEvent{l}}
	s := newService(f)

	if !s.DeleteEvent(l.ID) {
		t.Fatal("expected delete to succeed")
	}
	if len(s.Events()) != 1 {
		t.Fatal("plain events must be untouched when a life event is deleted")
	}
	if len(s.LifeEvents()) != 0 {
		t.Fatal("life event not removed")
	}
	if len(f.lifeEvents) != 0 {
		t.Fatal("life-event collection not mirrored")
	}
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	f := &fakeStore{}
	s := newService(f)
	if s.DeleteEvent("nope") {
		t.Fatal("unknown id must be a no-op")
	}
}

func TestSaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	f := &fakeStore{failSaves: true}
	s := newService(f)

	e := model.NewEvent("kept", time.Now(), time.Now().Add(time.Hour), model.TypeEvent)
	s.CreateEvent(e)

	if len(s.Events()) != 1 {
		t.Fatal("in-memory state must survive a failed write")
	}
	if len(f.events) != 0 {
		t.Fatal("failed save must not mutate the store")
	}
}

func TestAdjustGoalProgressClamps(t *testing.T) {
	g := model.NewGoal("stretch", model.CategoryHealth, 5)
	f := &fakeStore{goals: []*model.Goal{g}}
	s := newService(f)

	got, ok := s.AdjustGoalProgress(g.ID, -10)
	if !ok {
		t.Fatal("goal not found")
	}
	if got.Progress != 0 {
		t.Fatalf("progress = %d, want 0", got.Progress)
	}
}

func TestUnifiedLength(t *testing.T) {
	l := model.NewLifeEvent("birthday", time.Now(), model.TypeBirthday)
	e := model.NewEvent("standup", time.Now(), time.Now(), model.TypeEvent)
	s := newService(&fakeStore{events: []*model.Event{e}, lifeEvents: []*model.LifeEvent{l}})

	if got := len(s.Unified()); got != 2 {
		t.Fatalf("unified length = %d, want 2", got)
	}
}
