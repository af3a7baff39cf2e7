package view

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	// Wednesday.
	anchor := time.Date(2026, time.July, 1, 15, 4, 5, 0, time.Local)
	got := StartOfWeek(anchor, time.Sunday)
	want := time.Date(2026, time.June, 28, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("StartOfWeek = %v, want %v", got, want)
	}
}

func TestWeekRange(t *testing.T) {
	anchor := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local)
	days := WeekRange(anchor, time.Sunday)
	if len(days) != 7 {
		t.Fatalf("week has %d days", len(days))
	}
	if days[0].Weekday() != time.Sunday {
		t.Fatalf("week starts on %v", days[0].Weekday())
	}
	if days[6].Weekday() != time.Saturday {
		t.Fatalf("week ends on %v", days[6].Weekday())
	}
	for i := 1; i < 7; i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatal("days must be consecutive")
		}
	}
}

func TestMonthRangeSpansPartialWeeks(t *testing.T) {
	// July 2026 begins on a Wednesday and ends on a Friday.
	anchor := time.Date(2026, time.July, 15, 0, 0, 0, 0, time.Local)
	days := MonthRange(anchor, time.Sunday)

	wantFirst := time.Date(2026, time.June, 28, 0, 0, 0, 0, time.Local) // preceding Sunday
	wantLast := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.Local) // following Saturday
	if !days[0].Equal(wantFirst) {
		t.Fatalf("range starts %v, want %v", days[0], wantFirst)
	}
	if !days[len(days)-1].Equal(wantLast) {
		t.Fatalf("range ends %v, want %v", days[len(days)-1], wantLast)
	}
	if len(days)%7 != 0 {
		t.Fatalf("range length %d is not whole weeks", len(days))
	}
}

func TestYearAnchors(t *testing.T) {
	anchor := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.Local)
	months := YearAnchors(anchor)
	if len(months) != 12 {
		t.Fatalf("got %d months", len(months))
	}
	for i, m := range months {
		if m.Year() != 2026 || m.Month() != time.Month(i+1) || m.Day() != 1 {
			t.Fatalf("month %d anchor = %v", i, m)
		}
	}
}
