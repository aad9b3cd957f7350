// Package timegrid discretizes the venue's business hours into fixed-width
// scheduling slots. A Slot is the minute-of-day at which it starts and covers
// the half-open window [slot, slot+interval). Because coverage is half-open,
// a reservation is allowed to end exactly at closing time.
package timegrid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDuration = errors.New("duration must be a positive multiple of the slot interval")

	ErrOutsideHours = errors.New("requested time falls outside business hours")

	ErrInvalidClock = errors.New("time must be in HH:MM format")
)

// Slot identifies a grid slot by its start, in minutes from midnight.
type Slot int

// Clock renders the slot start as "HH:MM".
func (s Slot) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(s)/60, int(s)%60)
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(v string) (Slot, error) {
	if len(v) != 5 || v[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	h, err := atoi2(v[0], v[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	m, err := atoi2(v[3], v[4])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return Slot(h*60 + m), nil
}

func atoi2(a, b byte) (int, error) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, ErrInvalidClock
	}
	return int(a-'0')*10 + int(b-'0'), nil
}

// Grid is the slot layout for one business day. It is immutable and all
// methods are pure functions of the grid and their arguments.
type Grid struct {
	Open        Slot
	Close       Slot
	IntervalMin int
}

// New builds a grid from "HH:MM" opening and closing times.
func New(open, close string, intervalMin int) (Grid, error) {
	o, err := ParseClock(open)
	if err != nil {
		return Grid{}, err
	}
	c, err := ParseClock(close)
	if err != nil {
		return Grid{}, err
	}
	if intervalMin <= 0 {
		return Grid{}, fmt.Errorf("slot interval must be positive, got %d", intervalMin)
	}
	if c <= o {
		return Grid{}, fmt.Errorf("closing time %s must be after opening time %s", close, open)
	}
	return Grid{Open: o, Close: c, IntervalMin: intervalMin}, nil
}

// Slots returns every slot of the business day in ascending order. A slot is
// only included if its full coverage fits before closing time.
func (g Grid) Slots() []Slot {
	var slots []Slot
	for s := g.Open; s+Slot(g.IntervalMin) <= g.Close; s += Slot(g.IntervalMin) {
		slots = append(slots, s)
	}
	return slots
}

// Covered returns, in ascending order, the slots a reservation starting at
// the given "HH:MM" time occupies. The result always has exactly
// durationMin/IntervalMin entries.
//
// Fails with ErrInvalidDuration when durationMin is not a positive multiple
// of the interval, and with ErrOutsideHours when the start is not aligned
// within business hours or the window would extend past closing time.
func (g Grid) Covered(start string, durationMin int) ([]Slot, error) {
	first, err := ParseClock(start)
	if err != nil {
		return nil, err
	}
	if durationMin <= 0 || durationMin%g.IntervalMin != 0 {
		return nil, fmt.Errorf("%w: %d min on a %d min grid", ErrInvalidDuration, durationMin, g.IntervalMin)
	}
	if first < g.Open || first >= g.Close {
		return nil, fmt.Errorf("%w: start %s not within %s-%s", ErrOutsideHours, start, g.Open.Clock(), g.Close.Clock())
	}
	if (int(first)-int(g.Open))%g.IntervalMin != 0 {
		return nil, fmt.Errorf("%w: start %s is not aligned to the %d min grid", ErrOutsideHours, start, g.IntervalMin)
	}
	if int(first)+durationMin > int(g.Close) {
		return nil, fmt.Errorf("%w: %s + %d min extends past closing time %s", ErrOutsideHours, start, durationMin, g.Close.Clock())
	}

	n := durationMin / g.IntervalMin
	slots := make([]Slot, 0, n)
	for i := 0; i < n; i++ {
		slots = append(slots, first+Slot(i*g.IntervalMin))
	}
	return slots, nil
}
