package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category groups goals.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryHealth   Category = "health"
	CategoryLearning Category = "learning"
)

// AllCategories returns the supported goal categories.
func AllCategories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryWork,
		CategoryHealth,
		CategoryLearning,
	}
}

// ParseCategory converts a string to a Category. The empty string maps to
// CategoryPersonal.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CategoryPersonal, nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CategoryPersonal, fmt.Errorf("model: unknown category %q", raw)
}

// Goal tracks progress toward something, 0 to 100 percent.
type Goal struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Progress int        `json:"progress"`
	Category Category   `json:"category"`
	Due      *Timestamp `json:"dueDate,omitempty"`
}

// NewGoal creates a goal with a fresh id and clamped initial progress.
func NewGoal(title string, category Category, progress int) *Goal {
	if category == "" {
		category = CategoryPersonal
	}
	return &Goal{
		ID:       uuid.NewString(),
		Title:    title,
		Progress: ClampProgress(progress),
		Category: category,
	}
}

// ClampProgress bounds progress to [0, 100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// SetProgress replaces progress, clamped.
func (g *Goal) SetProgress(p int) {
	g.Progress = ClampProgress(p)
}

// AdjustProgress applies a delta, clamped. Clamping happens on every
// mutation, not just at creation.
func (g *Goal) AdjustProgress(delta int) {
	g.Progress = ClampProgress(g.Progress + delta)
}
