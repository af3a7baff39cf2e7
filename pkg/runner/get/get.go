// Package get implements the list verbs.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/almanac/pkg/agenda"
	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/printers"
)

// Kind selects which collection to list.
type Kind string

const (
	KindEvents Kind = "events"
	KindNotes  Kind = "notes"
	KindGoals  Kind = "goals"
	KindLife   Kind = "life"
)

// Get lists a collection, optionally filtered to one day.
type Get struct {
	Kind   Kind
	On     *time.Time
	ShowID bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	switch n.Kind {
	case KindEvents:
		all := n.Service.Unified()
		if n.On != nil {
			all = agenda.EventsOnDay(all, *n.On)
			pp.Title(n.On.Format("January 2, 2006"))
		} else {
			pp.Title("Events")
		}
		pp.Events(all...)
	case KindNotes:
		all := n.Service.Notes()
		if n.On != nil {
			all = agenda.NotesOnDay(all, *n.On)
			pp.Title(n.On.Format("January 2, 2006"))
		} else {
			pp.Title("Notes")
		}
		pp.Notes(all...)
	case KindGoals:
		pp.Title("Goals")
		pp.Goals(n.Service.Goals()...)
	case KindLife:
		pp.Title("Life events")
		pp.LifeEvents(time.Now(), n.Service.LifeEvents()...)
	default:
		return fmt.Errorf("unknown kind %q", n.Kind)
	}
	return nil
}
