// Package app provides the high-level mutation service over the almanac
// collections. It wraps persistence and the agenda transformations so the
// CLI and the TUI share one code path.
//
// Every mutation updates the in-memory collection first and then mirrors
// it to durable storage before returning. A failed write is logged and the
// in-memory state remains the source of truth for the rest of the session;
// there is no retry.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"tableflip.dev/almanac/pkg/agenda"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/store"
)

// Service owns the in-memory collections and writes through to the store.
type Service struct {
	Persistence store.Persistence

	events     []*model.Event
	notes      []*model.CalendarNote
	lifeEvents []*model.LifeEvent
	goals      []*model.Goal
}

// New loads every collection from the store into memory.
func New(p store.Persistence) *Service {
	s := &Service{Persistence: p}
	s.Reload()
	return s
}

// Reload re-reads all collections from durable storage, discarding the
// in-memory state. The TUI calls this when the store watch fires.
func (s *Service) Reload() {
	if s.Persistence == nil {
		return
	}
	s.events = s.Persistence.Events()
	s.notes = s.Persistence.Notes()
	s.lifeEvents = s.Persistence.LifeEvents()
	s.goals = s.Persistence.Goals()
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, fmt.Errorf("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Events returns the plain event collection. Callers must not mutate it.
func (s *Service) Events() []*model.Event { return s.events }

// Notes returns the note collection. Callers must not mutate it.
func (s *Service) Notes() []*model.CalendarNote { return s.notes }

// LifeEvents returns the life-event collection. Callers must not mutate it.
func (s *Service) LifeEvents() []*model.LifeEvent { return s.lifeEvents }

// Goals returns the goal collection. Callers must not mutate it.
func (s *Service) Goals() []*model.Goal { return s.goals }

// Unified returns the display set: events followed by one read-only
// projection per life event.
func (s *Service) Unified() []*model.Event {
	return agenda.Unify(s.events, s.lifeEvents)
}

// CreateEvent appends the event, assigning a fresh id when absent, and
// mirrors the collection.
func (s *Service) CreateEvent(e *model.Event) *model.Event {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.events = append(s.events, e)
	s.persistEvents()
	return e
}

// UpdateEvent replaces the stored event with the same id. An unknown id is
// a no-op, not an error.
func (s *Service) UpdateEvent(e *model.Event) bool {
	for i, existing := range s.events {
		if existing.ID == e.ID {
			s.events[i] = e
			s.persistEvents()
			return true
		}
	}
	return false
}

// DeleteEvent removes the record with the given id, routing through the
// agenda deletion rule: ids found in the life-event collection are removed
// there and the plain events are left untouched.
func (s *Service) DeleteEvent(id string) bool {
	events, lifeEvents, found := agenda.DeleteByID(id, s.events, s.lifeEvents)
	if !found {
		return false
	}
	if len(lifeEvents) != len(s.lifeEvents) {
		s.lifeEvents = lifeEvents
		s.persistLifeEvents()
		return true
	}
	s.events = events
	s.persistEvents()
	return true
}

// CreateNote appends the note and mirrors the collection.
func (s *Service) CreateNote(n *model.CalendarNote) *model.CalendarNote {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	s.notes = append(s.notes, n)
	s.persistNotes()
	return n
}

// UpdateNote replaces the stored note with the same id; unknown ids no-op.
func (s *Service) UpdateNote(n *model.CalendarNote) bool {
	for i, existing := range s.notes {
		if existing.ID == n.ID {
			s.notes[i] = n
			s.persistNotes()
			return true
		}
	}
	return false
}

// DeleteNote removes the note with the given id; unknown ids no-op.
func (s *Service) DeleteNote(id string) bool {
	for i, existing := range s.notes {
		if existing.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persistNotes()
			return true
		}
	}
	return false
}

// CreateLifeEvent appends the life event and mirrors the collection.
func (s *Service) CreateLifeEvent(l *model.LifeEvent) *model.LifeEvent {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	s.lifeEvents = append(s.lifeEvents, l)
	s.persistLifeEvents()
	return l
}

// UpdateLifeEvent replaces the stored life event with the same id; unknown
// ids no-op.
func (s *Service) UpdateLifeEvent(l *model.LifeEvent) bool {
	for i, existing := range s.lifeEvents {
		if existing.ID == l.ID {
			s.lifeEvents[i] = l
			s.persistLifeEvents()
			return true
		}
	}
	return false
}

// CreateGoal appends the goal, clamping progress, and mirrors the
// collection.
func (s *Service) CreateGoal(g *model.Goal) *model.Goal {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	g.Progress = model.ClampProgress(g.Progress)
	s.goals = append(s.goals, g)
	s.persistGoals()
	return g
}

// UpdateGoal replaces the stored goal with the same id, clamping progress;
// unknown ids no-op.
func (s *Service) UpdateGoal(g *model.Goal) bool {
	for i, existing := range s.goals {
		if existing.ID == g.ID {
			g.Progress = model.ClampProgress(g.Progress)
			s.goals[i] = g
			s.persistGoals()
			return true
		}
	}
	return false
}

// AdjustGoalProgress applies a clamped delta to the goal's progress.
func (s *Service) AdjustGoalProgress(id string, delta int) (*model.Goal, bool) {
	for _, g := range s.goals {
		if g.ID == id {
			g.AdjustProgress(delta)
			s.persistGoals()
			return g, true
		}
	}
	return nil, false
}

// DeleteGoal removes the goal with the given id; unknown ids no-op.
func (s *Service) DeleteGoal(id string) bool {
	for i, existing := range s.goals {
		if existing.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persistGoals()
			return true
		}
	}
	return false
}

func (s *Service) persistEvents() {
	if err := s.Persistence.SaveEvents(s.events); err != nil {
		fmt.Fprintf(os.Stderr, "app: save events: %v\n", err)
	}
}

func (s *Service) persistNotes() {
	if err := s.Persistence.SaveNotes(s.notes); err != nil {
		fmt.Fprintf(os.Stderr, "app: save notes: %v\n", err)
	}
}

func (s *Service) persistLifeEvents() {
	if err := s.Persistence.SaveLifeEvents(s.lifeEvents); err != nil {
		fmt.Fprintf(os.Stderr, "app: save life events: %v\n", err)
	}
}

func (s *Service) persistGoals() {
	if err := s.Persistence.SaveGoals(s.goals); err != nil {
		fmt.Fprintf(os.Stderr, "app: save goals: %v\n", err)
	}
}
