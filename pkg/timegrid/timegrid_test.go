package timegrid

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, open, close string, interval int) Grid {
	t.Helper()
	g, err := New(open, close, interval)
	if err != nil {
		t.Fatalf("New(%s, %s, %d): %v", open, close, interval, err)
	}
	return g
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		interval int
	}{
		{"bad open format", "10.00", "20:00", 10},
		{"bad close format", "10:00", "20h00", 10},
		{"hour out of range", "25:00", "26:00", 10},
		{"minute out of range", "10:61", "20:00", 10},
		{"inverted window", "20:00", "10:00", 10},
		{"empty window", "10:00", "10:00", 10},
		{"zero interval", "10:00", "20:00", 0},
		{"negative interval", "10:00", "20:00", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.open, tt.close, tt.interval); err == nil {
				t.Errorf("New(%s, %s, %d) succeeded, want error", tt.open, tt.close, tt.interval)
			}
		})
	}
}

func TestSlots_CountAndBounds(t *testing.T) {
	g := mustGrid(t, "10:00", "20:00", 10)
	slots := g.Slots()

	if len(slots) != 60 {
		t.Fatalf("got %d slots, want 60", len(slots))
	}
	if slots[0] != g.Open {
		t.Errorf("first slot = %s, want %s", slots[0].Clock(), g.Open.Clock())
	}
	last := slots[len(slots)-1]
	if last.Clock() != "19:50" {
		t.Errorf("last slot = %s, want 19:50", last.Clock())
	}
	// Last slot's coverage must not exceed closing time.
	if int(last)+g.IntervalMin > int(g.Close) {
		t.Errorf("last slot %s covers past closing time", last.Clock())
	}
}

func TestSlots_Deterministic(t *testing.T) {
	g := mustGrid(t, "09:30", "18:00", 15)
	a := g.Slots()
	b := g.Slots()
	if len(a) != len(b) {
		t.Fatalf("slot counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCovered_Length(t *testing.T) {
	g := mustGrid(t, "10:00", "20:00", 10)

	slots, err := g.Covered("10:10", 30)
	if err != nil {
		t.Fatalf("Covered: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	want := []string{"10:10", "10:20", "10:30"}
	for i, s := range slots {
		if s.Clock() != want[i] {
			t.Errorf("slot %d = %s, want %s", i, s.Clock(), want[i])
		}
	}
}

func TestCovered_InvalidDuration(t *testing.T) {
	g := mustGrid(t, "10:00", "20:00", 10)

	for _, dur := range []int{15, 0, -10, 7} {
		if _, err := g.Covered("10:00", dur); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Covered(10:00, %d) = %v, want ErrInvalidDuration", dur, err)
		}
	}
}

func TestCovered_OutsideHours(t *testing.T) {
	g := mustGrid(t, "10:00", "20:00", 10)

	tests := []struct {
		name  string
		start string
		dur   int
	}{
		{"before opening", "09:50", 30},
		{"at closing", "20:00", 10},
		{"after closing", "21:00", 10},
		{"extends past closing", "19:50", 20},
		{"unaligned start", "10:05", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Covered(tt.start, tt.dur); !errors.Is(err, ErrOutsideHours) {
				t.Errorf("Covered(%s, %d) = %v, want ErrOutsideHours", tt.start, tt.dur, err)
			}
		})
	}
}

func TestCovered_EndsExactlyAtClose(t *testing.T) {
	g := mustGrid(t, "10:00", "20:00", 10)

	slots, err := g.Covered("19:30", 30)
	if err != nil {
		t.Fatalf("reservation ending exactly at closing time should be legal: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3", len(slots))
	}
	if slots[2].Clock() != "19:50" {
		t.Errorf("last covered slot = %s, want 19:50", slots[2].Clock())
	}
}

func TestParseClock_RoundTrip(t *testing.T) {
	for _, v := range []string{"00:00", "09:05", "10:30", "23:59"} {
		s, err := ParseClock(v)
		if err != nil {
			t.Fatalf("ParseClock(%s): %v", v, err)
		}
		if s.Clock() != v {
			t.Errorf("round trip %s -> %s", v, s.Clock())
		}
	}
}
