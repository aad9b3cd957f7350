package service

import (
	"fmt"

	reservationserrors "ashiyu/internal/reservations/errors"
	"ashiyu/pkg/model"
	"ashiyu/pkg/timegrid"
)

// ResolveSeats assigns seats for a new reservation. A seat is occupied
// for the whole window if any existing reservation holding it overlaps
// the window at all; partial overlap blocks the seat entirely. Free
// seats are taken in ascending numeric order, so the same pool and the
// same existing reservations always produce the same assignment.
//
// The function is pure: it never reads the clock, the database, or any
// other state beyond its arguments.
func ResolveSeats(seatCount int, existing []*model.Reservation, startMin, endMin, partySize int) ([]int, error) {
	occupied := make(map[int]bool)
	for _, res := range existing {
		resStart, err := timegrid.ParseClock(res.StartTime)
		if err != nil {
			return nil, fmt.Errorf("reservation %s has invalid start time %q: %w", res.ID, res.StartTime, err)
		}
		resEnd := int(resStart) + res.DurationMin

		if int(resStart) < endMin && resEnd > startMin {
			for _, seat := range res.Seats {
				occupied[seat] = true
			}
		}
	}

	seats := make([]int, 0, partySize)
	for seat := 1; seat <= seatCount; seat++ {
		if occupied[seat] {
			continue
		}
		seats = append(seats, seat)
		if len(seats) == partySize {
			return seats, nil
		}
	}

	return nil, fmt.Errorf("%w: need %d, %d free between %s and %s",
		reservationserrors.ErrInsufficientSeats,
		partySize,
		len(seats),
		timegrid.Slot(startMin).Clock(),
		timegrid.Slot(endMin).Clock(),
	)
}
