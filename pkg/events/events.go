// Package events defines the domain events published when reservations
// and orders change, and the notifier that delivers them to Kafka.
package events

import (
	"context"
	"time"

	"ashiyu/pkg/model"
)

// Event types carried in the event-type message header.
const (
	TypeReservationCreated = "reservation.created"
	TypeReservationDeleted = "reservation.deleted"
	TypeOrderPlaced        = "order.placed"
	TypeOrderDeleted       = "order.deleted"
	TypeOrdersCleared      = "orders.cleared"
)

// SchemaVersion is stamped on every published event.
const SchemaVersion = "1"

type ReservationCreated struct {
	ReservationID string    `json:"reservation_id"`
	Name          string    `json:"name"`
	StartTime     string    `json:"start_time"`
	DurationMin   int       `json:"duration_min"`
	PartySize     int       `json:"party_size"`
	Seats         []int     `json:"seats"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationDeleted struct {
	ReservationID string    `json:"reservation_id"`
	DeletedAt     time.Time `json:"deleted_at"`
}

type OrderPlaced struct {
	OrderID   string    `json:"order_id"`
	Seat      int       `json:"seat"`
	Salt      string    `json:"salt"`
	Drink     string    `json:"drink"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderDeleted struct {
	OrderID   string    `json:"order_id"`
	Seat      int       `json:"seat"`
	DeletedAt time.Time `json:"deleted_at"`
}

type OrdersCleared struct {
	Count     int64     `json:"count"`
	ClearedAt time.Time `json:"cleared_at"`
}

// Notifier publishes domain events. Implementations must never make a
// failed publish fail the business operation that produced it.
type Notifier interface {
	ReservationCreated(ctx context.Context, reservation *model.Reservation)
	ReservationDeleted(ctx context.Context, reservationID string)
	OrderPlaced(ctx context.Context, order *model.Order)
	OrderDeleted(ctx context.Context, order *model.Order)
	OrdersCleared(ctx context.Context, count int64)
}
