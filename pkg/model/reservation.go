package model

import (
	"time"
)

// Reservation is a time-windowed claim on a set of numbered seats. Once
// created it is never edited in place; changing a reservation means deleting
// it and booking again.
type Reservation struct {
	ID            string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name          string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	StartTime     string    `json:"start_time" bson:"start_time" validate:"required,clock_time"`
	DurationMin   int       `json:"duration_min" bson:"duration_min" validate:"required,min=1,max=480"`
	PartySize     int       `json:"party_size" bson:"party_size" validate:"required,min=1,max=200"`
	PaymentMethod string    `json:"payment_method" bson:"payment_method" validate:"required,oneof=cash card transfer"`
	Memo          string    `json:"memo,omitempty" bson:"memo" validate:"omitempty,max=500"`
	Seats         []int     `json:"seats,omitempty" bson:"-" validate:"omitempty,dive,min=1"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}
