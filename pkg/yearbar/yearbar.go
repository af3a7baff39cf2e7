// Package yearbar renders the year-progress indicator.
package yearbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DefaultWidth is the bar width in cells.
const DefaultWidth = 30

// Fraction returns how much of now's year has elapsed, in [0, 1).
func Fraction(now time.Time) float64 {
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(1, 0, 0)
	return float64(now.Sub(start)) / float64(end.Sub(start))
}

// Percent returns the elapsed fraction as a rounded percentage.
func Percent(now time.Time) int {
	return int(Fraction(now)*100 + 0.5)
}

// Render draws the progress bar for now's year. Width <= 0 uses
// DefaultWidth.
func Render(now time.Time, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	f := Fraction(now)
	filled := int(f * float64(width))
	if filled > width {
		filled = width
	}

	done := color.New(color.FgGreen).Sprint(strings.Repeat("█", filled))
	rest := color.New(color.Faint).Sprint(strings.Repeat("░", width-filled))
	label := color.New(color.Bold).Sprintf("%.1f%%", f*100)

	return fmt.Sprintf("%d  %s%s  %s", now.Year(), done, rest, label)
}
