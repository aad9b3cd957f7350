package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Seats travel through the application as an ordered []int. The comma-joined
// string form exists only at the storage boundary, where the repository
// encodes on write and decodes on read.

// EncodeSeats serializes seat ids ascending as "1,2,5". The input is not
// mutated. An empty set encodes as "".
func EncodeSeats(seats []int) string {
	if len(seats) == 0 {
		return ""
	}
	sorted := make([]int, len(seats))
	copy(sorted, seats)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// DecodeSeats parses the stored comma-joined form back into ascending seat
// ids, rejecting malformed and non-positive entries.
func DecodeSeats(encoded string) ([]int, error) {
	if encoded == "" {
		return nil, nil
	}

	parts := strings.Split(encoded, ",")
	seats := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid seat id %q in %q", p, encoded)
		}
		if n <= 0 {
			return nil, fmt.Errorf("seat id must be positive, got %d in %q", n, encoded)
		}
		seats = append(seats, n)
	}
	sort.Ints(seats)
	return seats, nil
}
