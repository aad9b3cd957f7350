package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	ErrInvalidID = errors.New("invalid reservation ID format")

	// ErrInsufficientSeats means no seat assignment exists for the
	// requested window, regardless of which seats are chosen.
	ErrInsufficientSeats = errors.New("not enough free seats for the requested time window")
)
