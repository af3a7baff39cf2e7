package yearbar

import (
	"strings"
	"testing"
	"time"
)

func TestFractionBounds(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	if f := Fraction(start); f != 0 {
		t.Fatalf("new year fraction = %f, want 0", f)
	}

	end := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	if f := Fraction(end); f < 0.99 || f >= 1 {
		t.Fatalf("year-end fraction = %f", f)
	}
}

func TestPercentMidYear(t *testing.T) {
	// 2026 is not a leap year; July 2 noon is the midpoint.
	mid := time.Date(2026, time.July, 2, 12, 0, 0, 0, time.UTC)
	if p := Percent(mid); p != 50 {
		t.Fatalf("midpoint percent = %d, want 50", p)
	}
}

func TestRenderContainsYearAndPercent(t *testing.T) {
	now := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	out := Render(now, 10)
	if !strings.Contains(out, "2026") {
		t.Fatalf("render missing year: %q", out)
	}
	if !strings.Contains(out, "%") {
		t.Fatalf("render missing percent label: %q", out)
	}
}
