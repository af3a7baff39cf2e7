// Package view implements the composed calendar view verbs.
package view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/printers"
	viewpkg "tableflip.dev/almanac/pkg/view"
)

// Granularity selects the view skeleton.
type Granularity string

const (
	Week  Granularity = "week"
	Month Granularity = "month"
	Year  Granularity = "year"
)

// View composes and prints a week, month or year around the anchor date.
type View struct {
	Granularity Granularity
	Anchor      time.Time
	Options     viewpkg.Options

	Service *app.Service
}

func (n *View) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not view, no service")
	}

	events := n.Service.Unified()
	notes := n.Service.Notes()
	pp := printers.PrettyPrint{}
	fmt.Println("")

	switch n.Granularity {
	case Week:
		pp.Week(viewpkg.ComposeWeek(events, notes, n.Anchor, n.Options))
	case Month:
		pp.Month(viewpkg.ComposeMonth(events, notes, n.Anchor, n.Options))
	case Year:
		pp.Year(viewpkg.ComposeYear(events, notes, n.Anchor, n.Options))
	default:
		return fmt.Errorf("unknown granularity %q", n.Granularity)
	}
	return nil
}
