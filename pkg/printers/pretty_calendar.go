package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/almanac/pkg/view"
)

const gridWidth = len("Su Mo Tu We Th Fr Sa")

// Week prints each day of the composed week with its full bucket; week
// cells are never truncated.
func (pp *PrettyPrint) Week(v view.WeekView) {
	day := color.New(color.Bold)
	today := color.New(color.Bold, color.FgHiCyan)
	dim := color.New(color.Faint, color.Italic)
	p := color.New()

	for _, cell := range v.Days {
		printer := day
		if cell.IsToday {
			printer = today
		}
		_, _ = printer.Println(cell.Day.Format("Monday, January 2"))

		if len(cell.Events) == 0 && len(cell.Notes) == 0 {
			_, _ = dim.Println("  nothing scheduled")
			continue
		}
		for _, e := range cell.Events {
			marker := "•"
			if e.IsLifeEvent {
				marker = "♥"
			}
			at := "--:--"
			if !e.Start.IsZero() {
				at = e.Start.Local().Format("15:04")
			}
			_, _ = p.Printf("  %s %s %s\n", at, marker, e.Title)
		}
		for _, n := range cell.Notes {
			_, _ = dim.Printf("  [%s] %s\n", n.Color, n.Content)
		}
	}
	fmt.Println("")
}

// Month prints the grid, then the per-day items with overflow shown as
// "+K more".
func (pp *PrettyPrint) Month(v view.MonthView) {
	title := color.New(color.FgWhite, color.Italic)
	header := color.New(color.Faint)
	faint := color.New(color.Faint)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiCyan, color.Underline)
	p := color.New()
	dim := color.New(color.Faint, color.Italic)

	name := v.Anchor.Format("January 2006")
	mid := (gridWidth - len(name)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = title.Printf("%s%s\n", strings.Repeat(" ", mid), name)
	if len(v.Weeks) > 0 {
		labels := make([]string, 0, 7)
		for _, cell := range v.Weeks[0] {
			labels = append(labels, cell.Day.Format("Mon")[:2])
		}
		_, _ = header.Println(strings.Join(labels, " "))
	}

	for _, week := range v.Weeks {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			printer := faint
			if cell.InMonth {
				printer = p
				if len(cell.Events) > 0 {
					printer = busy
				}
			}
			if cell.IsToday {
				printer = today
			}
			cells = append(cells, printer.Sprintf("%2d", cell.Day.Day()))
		}
		fmt.Println(strings.Join(cells, " "))
	}
	fmt.Println("")

	for _, week := range v.Weeks {
		for _, cell := range week {
			if len(cell.Events) == 0 && len(cell.Notes) == 0 {
				continue
			}
			printer := p
			if !cell.InMonth {
				printer = faint
			}
			_, _ = printer.Println(cell.Day.Format("Jan 2"))
			for _, e := range cell.Events {
				marker := "•"
				if e.IsLifeEvent {
					marker = "♥"
				}
				_, _ = printer.Printf("  %s %s\n", marker, e.Title)
			}
			if cell.Overflow > 0 {
				_, _ = dim.Printf("  +%d more\n", cell.Overflow)
			}
			for _, n := range cell.Notes {
				_, _ = dim.Printf("  [%s] %s\n", n.Color, n.Content)
			}
		}
	}
	fmt.Println("")
}

// Year prints one line per month: counts only, no individual items.
func (pp *PrettyPrint) Year(v view.YearView) {
	title := color.New(color.Bold, color.Underline)
	p := color.New()
	dim := color.New(color.Faint)

	_, _ = title.Println(v.Anchor.Format("2006"))
	for _, m := range v.Months {
		line := fmt.Sprintf("%-10s", m.Month.Format("January"))
		counts := dim.Sprintf("%d events, %d notes", m.EventCount, m.NoteCount)
		if m.EventCount > 0 || m.NoteCount > 0 {
			counts = p.Sprintf("%d events, %d notes", m.EventCount, m.NoteCount)
		}
		fmt.Printf("%s %s\n", line, counts)
	}
	fmt.Println("")
}
