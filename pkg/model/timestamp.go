package model

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Timestamp wraps time.Time with JSON round-tripping that preserves the
// instant (RFC3339) and degrades unparseable input to the zero value instead
// of failing the whole record.
type Timestamp struct {
	time.Time
}

// Layouts accepted when rehydrating persisted dates. Older saves used a bare
// day form for life events.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ParseTime parses a persisted timestamp string.
func ParseTime(v string) (time.Time, error) {
	var firstErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// At builds a Timestamp from a time.Time.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// SameDay reports whether the timestamp and then fall on the same local
// calendar day.
func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

// SameMonth reports whether the timestamp and then fall in the same local
// month.
func (t Timestamp) SameMonth(then time.Time) bool {
	return t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

// UnmarshalJSON rehydrates a serialized date. A value that cannot be parsed
// leaves the zero-time sentinel in place and logs; it never fails the record.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "model: invalid timestamp %q: %v\n", timestamp, err)
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// DayOf truncates t to midnight local time.
func DayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}
