package model

// SeatGrid is the time-slots-by-seats occupancy view shown on the
// reservation page and the staff board. It is derived, never persisted.
type SeatGrid struct {
	OpenTime    string        `json:"open_time"`
	CloseTime   string        `json:"close_time"`
	IntervalMin int           `json:"interval_min"`
	Seats       []int         `json:"seats"`
	Rows        []SeatGridRow `json:"rows"`
}

// SeatGridRow lists which seats are taken and which remain free for one slot.
type SeatGridRow struct {
	Time     string `json:"time"`
	Occupied []int  `json:"occupied"`
	Free     []int  `json:"free"`
}
