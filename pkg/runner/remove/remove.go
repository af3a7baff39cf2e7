// Package remove implements the delete verb.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/almanac/pkg/app"
)

// Remove deletes a record by id. Event ids are routed through the agenda
// deletion rule (life events first); note and goal ids hit their own
// collections. An id found nowhere is reported but is not an error.
type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	removed := n.Service.DeleteEvent(n.ID) ||
		n.Service.DeleteNote(n.ID) ||
		n.Service.DeleteGoal(n.ID)

	if !removed {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("nothing with id %s\n", n.ID)
		return nil
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
