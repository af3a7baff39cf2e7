// Package model defines the persisted record types for almanac: events,
// life events, calendar notes and goals, plus the Timestamp wrapper they
// share for durable date round-tripping.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// Type identifies what kind of calendar entry an event is.
type Type string

const (
	TypeEvent       Type = "event"
	TypeTask        Type = "task"
	TypeAppointment Type = "appointment"
	TypeBirthday    Type = "birthday"
	TypeAnniversary Type = "anniversary"
	TypeHoliday     Type = "holiday"
	TypeSpecial     Type = "special"
)

// AllTypes returns the supported event types.
func AllTypes() []Type {
	return []Type{
		TypeEvent,
		TypeTask,
		TypeAppointment,
		TypeBirthday,
		TypeAnniversary,
		TypeHoliday,
		TypeSpecial,
	}
}

// ParseType converts a string to a Type or returns an error for unknown
// values. The empty string maps to the default TypeEvent.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TypeEvent, nil
	}
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeEvent, fmt.Errorf("model: unknown event type %q", raw)
}

// Priority marks how important an event is.
type Priority string

const (
	PriorityNone   Priority = ""
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string to a Priority.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case PriorityNone, PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return PriorityNone, fmt.Errorf("model: unknown priority %q", raw)
}

// Event is a scheduled calendar entry. End is expected to be at or after
// Start but that is not enforced here. IsLifeEvent marks read-only
// projections derived from the life-event collection; those are never
// written back as plain events.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Image       string    `json:"image,omitempty"`
	Start       Timestamp `json:"startTime"`
	End         Timestamp `json:"endTime"`
	Type        Type      `json:"type"`
	Color       string    `json:"color,omitempty"`
	Recurrence  string    `json:"recurrence,omitempty"`
	Priority    Priority  `json:"priority,omitempty"`
	IsLifeEvent bool      `json:"isLifeEvent,omitempty"`
}

// NewEvent creates an event with a fresh id.
func NewEvent(title string, start, end time.Time, typ Type) *Event {
	if typ == "" {
		typ = TypeEvent
	}
	return &Event{
		ID:    uuid.NewString(),
		Title: title,
		Start: At(start),
		End:   At(end),
		Type:  typ,
	}
}

// ValidateRecurrence checks that a recurrence tag is a well-formed RRULE.
// Tags are stored verbatim and never expanded into instances.
func ValidateRecurrence(tag string) error {
	if tag == "" {
		return nil
	}
	if _, err := rrule.StrToRRule(tag); err != nil {
		return fmt.Errorf("model: invalid recurrence %q: %w", tag, err)
	}
	return nil
}
