// Package printers renders collections and composed views for the
// terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/almanac/pkg/model"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Events prints the unified event list. Life-event projections are marked
// with a heart.
func (pp *PrettyPrint) Events(events ...*model.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("ID", "WHEN", "TYPE", "TITLE", "WHERE")
	} else {
		table.AddRow("WHEN", "TYPE", "TITLE", "WHERE")
	}

	for _, e := range events {
		title := e.Title
		if e.IsLifeEvent {
			title = "♥ " + title
		}
		when := formatWhen(e)
		if pp.ShowID {
			table.AddRow(e.ID, when, string(e.Type), title, e.Location)
		} else {
			table.AddRow(when, string(e.Type), title, e.Location)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Notes prints sticky notes with their palette color tag.
func (pp *PrettyPrint) Notes(notes ...*model.CalendarNote) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 70
	if pp.ShowID {
		table.AddRow("ID", "DAY", "COLOR", "NOTE")
	} else {
		table.AddRow("DAY", "COLOR", "NOTE")
	}
	for _, n := range notes {
		content := n.Content
		if n.Pinned {
			content = "* " + content
		}
		if pp.ShowID {
			table.AddRow(n.ID, n.On.Local().Format("Jan 2"), n.Color, content)
		} else {
			table.AddRow(n.On.Local().Format("Jan 2"), n.Color, content)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Goals prints goals with a small progress gauge.
func (pp *PrettyPrint) Goals(goals ...*model.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "CATEGORY", "GOAL", "PROGRESS", "DUE")
	} else {
		table.AddRow("CATEGORY", "GOAL", "PROGRESS", "DUE")
	}
	for _, g := range goals {
		due := ""
		if g.Due != nil && !g.Due.IsZero() {
			due = g.Due.Local().Format("Jan 2, 2006")
		}
		gauge := fmt.Sprintf("%s %3d%%", progressGauge(g.Progress, 10), g.Progress)
		if pp.ShowID {
			table.AddRow(g.ID, string(g.Category), g.Title, gauge, due)
		} else {
			table.AddRow(string(g.Category), g.Title, gauge, due)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// LifeEvents prints life events with the derived countdown.
func (pp *PrettyPrint) LifeEvents(now time.Time, lifeEvents ...*model.LifeEvent) {
	if len(lifeEvents) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TYPE", "TITLE", "IN")
	} else {
		table.AddRow("DATE", "TYPE", "TITLE", "IN")
	}
	for _, l := range lifeEvents {
		in := fmt.Sprintf("%d days", l.DaysUntil(now))
		if pp.ShowID {
			table.AddRow(l.ID, l.Date.Local().Format("Jan 2, 2006"), string(l.Type), l.Title, in)
		} else {
			table.AddRow(l.Date.Local().Format("Jan 2, 2006"), string(l.Type), l.Title, in)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

func formatWhen(e *model.Event) string {
	if e.Start.IsZero() {
		return "invalid date"
	}
	day := e.Start.Local().Format("Jan 2 15:04")
	if e.End.IsZero() || e.End.Equal(e.Start.Time) {
		return day
	}
	return fmt.Sprintf("%s-%s", day, e.End.Local().Format("15:04"))
}

func progressGauge(progress, width int) string {
	filled := progress * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
