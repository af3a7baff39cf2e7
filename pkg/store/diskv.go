// Package store persists the almanac collections to a local diskv
// database: one key per collection, each holding a serialized JSON array.
// Date fields are rehydrated on load through model.Timestamp; a record
// whose date cannot be parsed degrades to the zero-time sentinel instead
// of failing the whole collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/almanac/pkg/model"
)

// Key names a persisted collection. The four keys are independent; each
// maps to its own record schema with its own date-bearing fields.
type Key string

const (
	KeyEvents     Key = "events"
	KeyNotes      Key = "notes"
	KeyLifeEvents Key = "life-events"
	KeyGoals      Key = "goals"
)

// Keys lists every persisted collection key.
func Keys() []Key {
	return []Key{KeyEvents, KeyNotes, KeyLifeEvents, KeyGoals}
}

// Persistence is the durable storage contract. Loads fall back to an empty
// collection when the key is absent or its content is malformed (logged,
// never surfaced as a blocking error). Saves are full overwrites; a failed
// save returns an error and leaves the previously persisted value intact.
type Persistence interface {
	Events() []*model.Event
	SaveEvents(events []*model.Event) error

	Notes() []*model.CalendarNote
	SaveNotes(notes []*model.CalendarNote) error

	LifeEvents() []*model.LifeEvent
	SaveLifeEvents(lifeEvents []*model.LifeEvent) error

	Goals() []*model.Goal
	SaveGoals(goals []*model.Goal) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// A nil config loads the default one.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(key string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Events() []*model.Event {
	return load[model.Event](p, KeyEvents)
}

func (p *persistence) SaveEvents(events []*model.Event) error {
	return save(p, KeyEvents, events)
}

func (p *persistence) Notes() []*model.CalendarNote {
	return load[model.CalendarNote](p, KeyNotes)
}

func (p *persistence) SaveNotes(notes []*model.CalendarNote) error {
	return save(p, KeyNotes, notes)
}

func (p *persistence) LifeEvents() []*model.LifeEvent {
	return load[model.LifeEvent](p, KeyLifeEvents)
}

func (p *persistence) SaveLifeEvents(lifeEvents []*model.LifeEvent) error {
	return save(p, KeyLifeEvents, lifeEvents)
}

func (p *persistence) Goals() []*model.Goal {
	return load[model.Goal](p, KeyGoals)
}

func (p *persistence) SaveGoals(goals []*model.Goal) error {
	return save(p, KeyGoals, goals)
}

// load reads the collection under key. An absent key is the empty
// collection; malformed content is logged and the empty collection is
// returned so one bad key never blocks the session.
func load[T any](p *persistence, key Key) []*T {
	val, err := p.d.Read(string(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", key, err)
		}
		return []*T{}
	}

	var list []*T
	if err := json.Unmarshal(val, &list); err != nil {
		fmt.Fprintf(os.Stderr, "store: unmarshal %s: %v\n", key, err)
		return []*T{}
	}

	records := make([]*T, 0, len(list))
	for _, r := range list {
		if r != nil {
			records = append(records, r)
		}
	}
	return records
}

// save overwrites the collection under key. On serialization failure
// nothing is written, so the prior persisted value remains.
func save[T any](p *persistence, key Key, list []*T) error {
	if list == nil {
		list = []*T{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := p.d.Write(string(key), data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
