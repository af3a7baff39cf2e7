package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/model"
)

func TestWatchSeesSave(t *testing.T) {
	p, _ := newTestStore(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	e := model.NewEvent("ping", time.Now(), time.Now().Add(time.Hour), model.TypeEvent)
	if err := p.SaveEvents([]*model.Event{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("watch channel closed before the save was observed")
			}
			if ev.Key == KeyEvents {
				return
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for watch event")
		}
	}
}
