// Package export implements the iCalendar export verb.
package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/almanac/pkg/app"
	"tableflip.dev/almanac/pkg/ics"
)

// Export writes the unified event collection to an .ics file.
type Export struct {
	Out string

	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	out := n.Out
	if out == "" {
		out = "almanac.ics"
	}
	if err := ics.ExportFile(out, n.Service.Unified(), time.Now()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
