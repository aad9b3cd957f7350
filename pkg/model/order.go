package model

import "time"

const (
	OrderStatusPending = "pending"
	OrderStatusServed  = "served"

	OrderSourceSeat  = "seat"
	OrderSourceStaff = "staff"

	OrderActionPlaced  = "placed"
	OrderActionDeleted = "deleted"
)

// Order is a walk-up drink/salt order tied to a seat. It is independent of
// any reservation covering that seat.
type Order struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Seat      int       `json:"seat" bson:"seat" validate:"required,min=1"`
	Salt      string    `json:"salt" bson:"salt" validate:"required,min=1,max=50"`
	Drink     string    `json:"drink" bson:"drink" validate:"required,min=1,max=50"`
	Status    string    `json:"status" bson:"status" validate:"required,oneof=pending served"`
	Source    string    `json:"source" bson:"source" validate:"required,oneof=seat staff"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// OrderRequest is the inbound shape for placing an order. Customers
// carry a seat token from their QR code; staff name the seat directly.
type OrderRequest struct {
	Seat      int    `json:"seat,omitempty" validate:"omitempty,min=1"`
	SeatToken string `json:"seat_token,omitempty" validate:"omitempty,max=512"`
	Salt      string `json:"salt" validate:"required,min=1,max=50"`
	Drink     string `json:"drink" validate:"required,min=1,max=50"`
}

// OrderLog is the append-only audit record for an order action. Log entries
// are never deleted, even when the live order is.
type OrderLog struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID   string    `json:"order_id" bson:"order_id"`
	Seat      int       `json:"seat" bson:"seat"`
	Salt      string    `json:"salt" bson:"salt"`
	Drink     string    `json:"drink" bson:"drink"`
	Action    string    `json:"action" bson:"action"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
