// Package year implements the year-progress verb.
package year

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/almanac/pkg/yearbar"
)

// Year prints how much of the current year has elapsed.
type Year struct {
	Width int
}

func (n *Year) Do(ctx context.Context) error {
	fmt.Println(yearbar.Render(time.Now(), n.Width))
	return nil
}
