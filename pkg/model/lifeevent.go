package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LifeEvent is a recurring-significance date (birthday, anniversary,
// holiday, special occasion). It lives in its own collection; unified
// display works through read-only Event projections (see pkg/agenda).
type LifeEvent struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            Timestamp `json:"date"`
	Type            Type      `json:"type"`
	Note            string    `json:"note,omitempty"`
	Color           string    `json:"color,omitempty"`
	Icon            string    `json:"icon,omitempty"`
	RepeatsAnnually bool      `json:"repeatsAnnually,omitempty"`
}

// LifeEventTypes returns the types a life event may carry.
func LifeEventTypes() []Type {
	return []Type{TypeBirthday, TypeAnniversary, TypeHoliday, TypeSpecial}
}

// ParseLifeEventType converts a string to a life-event Type. The empty
// string maps to TypeSpecial.
func ParseLifeEventType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TypeSpecial, nil
	}
	for _, candidate := range LifeEventTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeSpecial, fmt.Errorf("model: unknown life event type %q", raw)
}

// NewLifeEvent creates a life event with a fresh id.
func NewLifeEvent(title string, date time.Time, typ Type) *LifeEvent {
	if typ == "" {
		typ = TypeSpecial
	}
	return &LifeEvent{
		ID:    uuid.NewString(),
		Title: title,
		Date:  At(date),
		Type:  typ,
	}
}

// DaysUntil returns whole days from now until the event. For annually
// repeating events it counts to the next occurrence, wrapping to next year
// when this year's date has passed. Derived at render time, never stored.
func (l *LifeEvent) DaysUntil(now time.Time) int {
	today := DayOf(now)
	target := DayOf(l.Date.Time)

	if l.RepeatsAnnually {
		target = time.Date(today.Year(), target.Month(), target.Day(),
			0, 0, 0, 0, today.Location())
		if target.Before(today) {
			target = target.AddDate(1, 0, 0)
		}
	}
	return int(target.Sub(today).Hours() / 24)
}
