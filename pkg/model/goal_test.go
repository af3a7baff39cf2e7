package model

import "testing"

func TestAdjustProgressClamps(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{name: "below zero", start: 5, delta: -10, want: 0},
		{name: "above hundred", start: 95, delta: 10, want: 100},
		{name: "in range", start: 40, delta: 25, want: 65},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGoal("run 100km", CategoryHealth, tc.start)
			g.AdjustProgress(tc.delta)
			if g.Progress != tc.want {
				t.Fatalf("progress = %d, want %d", g.Progress, tc.want)
			}
		})
	}
}

func TestNewGoalClampsInitialProgress(t *testing.T) {
	g := NewGoal("x", CategoryWork, 140)
	if g.Progress != 100 {
		t.Fatalf("progress = %d, want 100", g.Progress)
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" Health "); err != nil || c != CategoryHealth {
		t.Fatalf("got %q, %v", c, err)
	}
	if _, err := ParseCategory("finance"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if c, _ := ParseCategory(""); c != CategoryPersonal {
		t.Fatalf("empty category should default to personal, got %q", c)
	}
}
