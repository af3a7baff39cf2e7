// Package edit implements the update verbs. Updates replace the stored
// record matching the id; an unknown id is a no-op by design.
package edit

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/printers"
)

func reportMissing(id string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("nothing with id %s\n", id)
}

// Event updates fields on a stored event. Nil/empty fields keep the
// stored value.
type Event struct {
	ID          string
	Title       string
	Start       *time.Time
	End         *time.Time
	Type        model.Type
	Color       string
	Location    string
	Description string
	Recurrence  string
	Priority    model.Priority

	Service *app.Service
}

func (n *Event) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	if n.Recurrence != "" {
		if err := model.ValidateRecurrence(n.Recurrence); err != nil {
			return err
		}
	}

	var current *model.Event
	for _, e := range n.Service.Events() {
		if e.ID == n.ID {
			current = e
			break
		}
	}
	if current == nil {
		reportMissing(n.ID)
		return nil
	}

	next := *current
	if n.Title != "" {
		next.Title = n.Title
	}
	if n.Start != nil {
		next.Start = model.At(*n.Start)
	}
	if n.End != nil {
		next.End = model.At(*n.End)
	}
	if n.Type != "" {
		next.Type = n.Type
	}
	if n.Color != "" {
		next.Color = n.Color
	}
	if n.Location != "" {
		next.Location = n.Location
	}
	if n.Description != "" {
		next.Description = n.Description
	}
	if n.Recurrence != "" {
		next.Recurrence = n.Recurrence
	}
	if n.Priority != "" {
		next.Priority = n.Priority
	}
	n.Service.UpdateEvent(&next)

	pp := printers.PrettyPrint{}
	pp.Events(n.Service.Unified()...)
	return nil
}

// Note updates a stored note's content, color or pin.
type Note struct {
	ID      string
	Content string
	Color   string
	Pin     *bool

	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	var current *model.CalendarNote
	for _, note := range n.Service.Notes() {
		if note.ID == n.ID {
			current = note
			break
		}
	}
	if current == nil {
		reportMissing(n.ID)
		return nil
	}

	next := *current
	if n.Content != "" {
		next.Content = n.Content
	}
	if n.Color != "" && model.ValidNoteColor(n.Color) {
		next.Color = n.Color
	}
	if n.Pin != nil {
		next.Pinned = *n.Pin
	}
	n.Service.UpdateNote(&next)

	pp := printers.PrettyPrint{}
	pp.Notes(n.Service.Notes()...)
	return nil
}

// Life updates a stored life event.
type Life struct {
	ID     string
	Title  string
	On     *time.Time
	Type   model.Type
	Note   string
	Icon   string
	Annual *bool

	Service *app.Service
}

func (n *Life) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	var current *model.LifeEvent
	for _, l := range n.Service.LifeEvents() {
		if l.ID == n.ID {
			current = l
			break
		}
	}
	if current == nil {
		reportMissing(n.ID)
		return nil
	}

	next := *current
	if n.Title != "" {
		next.Title = n.Title
	}
	if n.On != nil {
		next.Date = model.At(*n.On)
	}
	if n.Type != "" {
		next.Type = n.Type
	}
	if n.Note != "" {
		next.Note = n.Note
	}
	if n.Icon != "" {
		next.Icon = n.Icon
	}
	if n.Annual != nil {
		next.RepeatsAnnually = *n.Annual
	}
	n.Service.UpdateLifeEvent(&next)

	pp := printers.PrettyPrint{}
	pp.LifeEvents(time.Now(), n.Service.LifeEvents()...)
	return nil
}
