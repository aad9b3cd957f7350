package model

// Board is the combined staff view: the reservation occupancy grid plus
// every live order grouped by seat.
type Board struct {
	Grid   *SeatGrid        `json:"grid"`
	Orders map[int][]*Order `json:"orders"`
}
