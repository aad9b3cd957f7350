package service

import (
	"errors"
	"testing"

	reservationserrors "ashiyu/internal/reservations/errors"
	"ashiyu/pkg/model"
)

func seatsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveSeats_PartialOverlapBlocksSeats(t *testing.T) {
	// Seats 1 and 2 are taken 10:00-10:30. A 10:10-10:30 request for a
	// party of two must skip them and get 3 and 4.
	existing := []*model.Reservation{
		{ID: "a", StartTime: "10:00", DurationMin: 30, Seats: []int{1, 2}},
	}

	seats, err := ResolveSeats(12, existing, 610, 630, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seatsEqual(seats, []int{3, 4}) {
		t.Errorf("expected seats [3 4], got %v", seats)
	}
}

func TestResolveSeats_EmptyPoolAscending(t *testing.T) {
	seats, err := ResolveSeats(12, nil, 600, 630, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seatsEqual(seats, []int{1, 2, 3}) {
		t.Errorf("expected seats [1 2 3], got %v", seats)
	}
}

func TestResolveSeats_PartyLargerThanPool(t *testing.T) {
	_, err := ResolveSeats(12, nil, 600, 630, 13)
	if !errors.Is(err, reservationserrors.ErrInsufficientSeats) {
		t.Fatalf("expected ErrInsufficientSeats, got %v", err)
	}
}

func TestResolveSeats_FullyBookedWindow(t *testing.T) {
	existing := []*model.Reservation{
		{ID: "a", StartTime: "10:00", DurationMin: 60, Seats: []int{1, 2, 3, 4, 5, 6}},
		{ID: "b", StartTime: "10:30", DurationMin: 60, Seats: []int{7, 8, 9, 10, 11, 12}},
	}

	_, err := ResolveSeats(12, existing, 630, 660, 1)
	if !errors.Is(err, reservationserrors.ErrInsufficientSeats) {
		t.Fatalf("expected ErrInsufficientSeats, got %v", err)
	}
}

func TestResolveSeats_BackToBackWindowsDoNotConflict(t *testing.T) {
	// 10:00-10:30 and 10:30-11:00 share no slot; the same seats are free.
	existing := []*model.Reservation{
		{ID: "a", StartTime: "10:00", DurationMin: 30, Seats: []int{1, 2}},
	}

	seats, err := ResolveSeats(12, existing, 630, 660, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seatsEqual(seats, []int{1, 2}) {
		t.Errorf("expected seats [1 2], got %v", seats)
	}
}

func TestResolveSeats_OverlapAtEitherEdge(t *testing.T) {
	tests := []struct {
		name     string
		startMin int
		endMin   int
		want     []int
	}{
		{"request ends inside existing window", 580, 610, []int{4, 5}},
		{"request starts inside existing window", 620, 650, []int{4, 5}},
		{"request strictly contains existing window", 590, 640, []int{4, 5}},
		{"request inside existing window", 610, 620, []int{4, 5}},
	}

	existing := []*model.Reservation{
		{ID: "a", StartTime: "10:00", DurationMin: 30, Seats: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seats, err := ResolveSeats(12, existing, tt.startMin, tt.endMin, 2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !seatsEqual(seats, tt.want) {
				t.Errorf("expected seats %v, got %v", tt.want, seats)
			}
		})
	}
}

func TestResolveSeats_Deterministic(t *testing.T) {
	existing := []*model.Reservation{
		{ID: "a", StartTime: "11:00", DurationMin: 30, Seats: []int{2, 5}},
		{ID: "b", StartTime: "11:10", DurationMin: 20, Seats: []int{1, 7}},
	}

	first, err := ResolveSeats(12, existing, 660, 690, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 50; i++ {
		seats, err := ResolveSeats(12, existing, 660, 690, 4)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if !seatsEqual(seats, first) {
			t.Fatalf("iteration %d: expected %v, got %v", i, first, seats)
		}
	}

	if !seatsEqual(first, []int{3, 4, 6, 8}) {
		t.Errorf("expected seats [3 4 6 8], got %v", first)
	}
}

func TestResolveSeats_InvalidStoredStartTime(t *testing.T) {
	existing := []*model.Reservation{
		{ID: "a", StartTime: "25:99", DurationMin: 30, Seats: []int{1}},
	}

	if _, err := ResolveSeats(12, existing, 600, 630, 1); err == nil {
		t.Fatal("expected error for corrupt stored start time")
	}
}
