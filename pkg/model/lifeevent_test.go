package model

import (
	"testing"
	"time"
)

func TestDaysUntilAnnual(t *testing.T) {
	now := time.Date(2026, time.August, 30, 10, 0, 0, 0, time.Local)

	l := NewLifeEvent("Mom's birthday", time.Date(1962, time.May, 4, 0, 0, 0, 0, time.Local), TypeBirthday)
	l.RepeatsAnnually = true

	// May 4 has passed in 2026, so the next occurrence is May 4, 2027.
	want := int(time.Date(2027, time.May, 4, 0, 0, 0, 0, time.Local).
		Sub(time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)).Hours() / 24)
	if got := l.DaysUntil(now); got != want {
		t.Fatalf("DaysUntil = %d, want %d", got, want)
	}
}

func TestDaysUntilAnnualToday(t *testing.T) {
	now := time.Date(2026, time.May, 4, 23, 0, 0, 0, time.Local)
	l := NewLifeEvent("anniversary", time.Date(2000, time.May, 4, 0, 0, 0, 0, time.Local), TypeAnniversary)
	l.RepeatsAnnually = true
	if got := l.DaysUntil(now); got != 0 {
		t.Fatalf("same-day occurrence should be 0 days away, got %d", got)
	}
}

func TestDaysUntilOneShotPast(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	l := NewLifeEvent("gone", time.Date(2026, time.August, 28, 0, 0, 0, 0, time.Local), TypeSpecial)
	if got := l.DaysUntil(now); got != -2 {
		t.Fatalf("one-shot past event: got %d, want -2", got)
	}
}

func TestValidateRecurrence(t *testing.T) {
	if err := ValidateRecurrence(""); err != nil {
		t.Fatalf("empty tag is valid: %v", err)
	}
	if err := ValidateRecurrence("FREQ=YEARLY;BYMONTH=5;BYMONTHDAY=4"); err != nil {
		t.Fatalf("valid rrule rejected: %v", err)
	}
	if err := ValidateRecurrence("FREQ=SOMETIMES"); err == nil {
		t.Fatal("expected error for malformed rrule")
	}
}
