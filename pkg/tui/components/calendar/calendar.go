// Package calendar renders the month grid for the interactive UI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/almanac/pkg/tui/theme"
	"tableflip.dev/almanac/pkg/view"
)

// Grid renders a composed month as a fixed-width text grid. Days outside
// the anchor month stay visible but faint; the weekday header follows the
// configured week start rather than assuming Sunday.
func Grid(month view.MonthView, selected time.Time, th theme.CalendarTheme) string {
	if len(month.Weeks) == 0 {
		return ""
	}

	var lines []string
	var header []string
	for _, cell := range month.Weeks[0] {
		header = append(header, cell.Day.Format("Mon")[:2])
	}
	lines = append(lines, th.Header.Render(strings.Join(header, " ")))

	for _, week := range month.Weeks {
		var cells []string
		for _, cell := range week {
			cells = append(cells, renderCell(cell, selected, th))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderCell(cell view.DayCell, selected time.Time, th theme.CalendarTheme) string {
	text := fmt.Sprintf("%2d", cell.Day.Day())

	style := th.Empty
	if cell.InMonth && (len(cell.Events) > 0 || len(cell.Notes) > 0) {
		style = th.Busy
	}
	if cell.IsToday {
		style = style.Inherit(th.Today)
	}
	if sameDay(cell.Day, selected) {
		style = style.Inherit(th.Selected)
	}
	return style.Render(text)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
