// Package progress implements the goal progress verb.
package progress

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/printers"
)

// Progress adjusts or sets a goal's completion percentage. The result is
// clamped to [0, 100] on every update.
type Progress struct {
	ID    string
	Delta int
	Set   *int

	Service *app.Service
}

func (n *Progress) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not update progress, no service")
	}

	updated := false
	if n.Set != nil {
		for _, g := range n.Service.Goals() {
			if g.ID == n.ID {
				next := *g
				next.SetProgress(*n.Set)
				updated = n.Service.UpdateGoal(&next)
				break
			}
		}
	} else {
		_, updated = n.Service.AdjustGoalProgress(n.ID, n.Delta)
	}
	if !updated {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("no goal with id %s\n", n.ID)
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.Title("Goals")
	pp.Goals(n.Service.Goals()...)
	return nil
}
