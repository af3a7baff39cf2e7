package model

import (
	"time"

	"github.com/google/uuid"
)

// NoteColors is the fixed palette a calendar note may be tagged with.
var NoteColors = []string{
	"amber",
	"rose",
	"sky",
	"mint",
	"lavender",
	"slate",
}

// DefaultNoteColor is used when no palette color is picked.
const DefaultNoteColor = "amber"

// ValidNoteColor reports whether the color belongs to the palette.
func ValidNoteColor(color string) bool {
	for _, c := range NoteColors {
		if c == color {
			return true
		}
	}
	return false
}

// CalendarNote is a free-text sticky note pinned to a day.
type CalendarNote struct {
	ID      string    `json:"id"`
	Content string    `json:"content"`
	Color   string    `json:"color"`
	On      Timestamp `json:"date"`
	Created Timestamp `json:"createdAt"`
	Pinned  bool      `json:"pinned,omitempty"`
}

// NewNote creates a note pinned to the given day with a fresh id. An
// off-palette color falls back to the default.
func NewNote(content string, on time.Time, color string) *CalendarNote {
	if !ValidNoteColor(color) {
		color = DefaultNoteColor
	}
	return &CalendarNote{
		ID:      uuid.NewString(),
		Content: content,
		Color:   color,
		On:      At(on),
		Created: At(time.Now()),
	}
}
