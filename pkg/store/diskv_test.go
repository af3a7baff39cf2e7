package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/almanac/pkg/model"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string        { return c.path }
func (c *testConfig) WeekStart() time.Weekday { return time.Sunday }
func (c *testConfig) MonthCap() int           { return 0 }

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p, dir
}

func TestEventRoundTripPreservesInstant(t *testing.T) {
	p, _ := newTestStore(t)

	start := time.Date(2026, time.September, 12, 14, 30, 0, 0, time.Local)
	e := model.NewEvent("dentist", start, start.Add(time.Hour), model.TypeAppointment)
	e.Color = "sky"

	if err := p.SaveEvents([]*model.Event{e}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Events()
	if len(got) != 1 {
		t.Fatalf("loaded %d events, want 1", len(got))
	}
	if got[0].ID != e.ID {
		t.Fatalf("id = %q, want %q", got[0].ID, e.ID)
	}
	if !got[0].Start.Equal(start) {
		t.Fatalf("start instant changed: got %v want %v", got[0].Start.Time, start)
	}
	if !got[0].End.Equal(start.Add(time.Hour)) {
		t.Fatal("end instant changed across round trip")
	}
}

func TestLoadMissingKeyReturnsEmpty(t *testing.T) {
	p, _ := newTestStore(t)
	if got := p.Goals(); len(got) != 0 {
		t.Fatalf("missing key should load empty, got %d", len(got))
	}
}

func TestLoadMalformedContentRecovers(t *testing.T) {
	p, dir := newTestStore(t)
	if err := os.WriteFile(filepath.Join(dir, string(KeyNotes)), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed malformed content: %v", err)
	}
	if got := p.Notes(); len(got) != 0 {
		t.Fatalf("malformed content should load the default, got %d records", len(got))
	}
}

func TestLoadRecordWithBadDateDegrades(t *testing.T) {
	p, dir := newTestStore(t)
	raw := `[{"id":"a1","title":"broken","startTime":"yesterday-ish","endTime":"","type":"event"}]`
	if err := os.WriteFile(filepath.Join(dir, string(KeyEvents)), []byte(raw), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got := p.Events()
	if len(got) != 1 {
		t.Fatalf("bad date must not drop the record: got %d", len(got))
	}
	if !got[0].Start.IsZero() {
		t.Fatalf("unparseable date should degrade to the sentinel, got %v", got[0].Start.Time)
	}
}

func TestSaveOverwrites(t *testing.T) {
	p, _ := newTestStore(t)

	g := model.NewGoal("read 12 books", model.CategoryLearning, 25)
	if err := p.SaveGoals([]*model.Goal{g}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SaveGoals([]*model.Goal{}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := p.Goals(); len(got) != 0 {
		t.Fatalf("save must fully overwrite, got %d records", len(got))
	}
}

func TestLifeEventRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	l := model.NewLifeEvent("Mom's birthday", time.Date(1962, time.May, 4, 0, 0, 0, 0, time.Local), model.TypeBirthday)
	l.RepeatsAnnually = true
	l.Icon = "cake"

	if err := p.SaveLifeEvents([]*model.LifeEvent{l}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := p.LifeEvents()
	if len(got) != 1 || !got[0].RepeatsAnnually || got[0].Icon != "cake" {
		t.Fatalf("unexpected life events: %+v", got)
	}
	if !got[0].Date.Equal(l.Date.Time) {
		t.Fatal("date instant changed across round trip")
	}
}
