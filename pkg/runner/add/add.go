// Package add implements the create verbs.
package add

import (
	"context"
	"time"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/model"
	"tableflip.dev/almanac/pkg/printers"
)

// Event creates a scheduled event.
type Event struct {
	Title       string
	Start       time.Time
	End         time.Time
	Type        model.Type
	Color       string
	Location    string
	Description string
	Recurrence  string
	Priority    model.Priority

	Service *app.Service
}

func (n *Event) Do(ctx context.Context) error {
	if err := model.ValidateRecurrence(n.Recurrence); err != nil {
		return err
	}

	e := model.NewEvent(n.Title, n.Start, n.End, n.Type)
	e.Color = n.Color
	e.Location = n.Location
	e.Description = n.Description
	e.Recurrence = n.Recurrence
	e.Priority = n.Priority
	n.Service.CreateEvent(e)

	pp := printers.PrettyPrint{}
	pp.Title(n.Start.Format("January 2, 2006"))
	pp.Events(n.Service.Unified()...)
	return nil
}

// Note creates a sticky note pinned to a day.
type Note struct {
	Content string
	On      time.Time
	Color   string
	Pinned  bool

	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	note := model.NewNote(n.Content, n.On, n.Color)
	note.Pinned = n.Pinned
	n.Service.CreateNote(note)

	pp := printers.PrettyPrint{}
	pp.Title(n.On.Format("January 2, 2006"))
	pp.Notes(n.Service.Notes()...)
	return nil
}

// Goal creates a progress goal.
type Goal struct {
	Title    string
	Category model.Category
	Progress int
	Due      *time.Time

	Service *app.Service
}

func (n *Goal) Do(ctx context.Context) error {
	g := model.NewGoal(n.Title, n.Category, n.Progress)
	if n.Due != nil {
		due := model.At(*n.Due)
		g.Due = &due
	}
	n.Service.CreateGoal(g)

	pp := printers.PrettyPrint{}
	pp.Title("Goals")
	pp.Goals(n.Service.Goals()...)
	return nil
}

// Life creates a life event.
type Life struct {
	Title  string
	On     time.Time
	Type   model.Type
	Note   string
	Color  string
	Icon   string
	Annual bool

	Service *app.Service
}

func (n *Life) Do(ctx context.Context) error {
	l := model.NewLifeEvent(n.Title, n.On, n.Type)
	l.Note = n.Note
	l.Color = n.Color
	l.Icon = n.Icon
	l.RepeatsAnnually = n.Annual
	n.Service.CreateLifeEvent(l)

	pp := printers.PrettyPrint{}
	pp.Title("Life events")
	pp.LifeEvents(time.Now(), n.Service.LifeEvents()...)
	return nil
}
