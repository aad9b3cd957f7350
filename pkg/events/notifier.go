package events

import (
	"context"
	"strconv"
	"time"

	"ashiyu/pkg/kafka"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"
)

// publisher is the subset of the Kafka producer the notifier needs,
// kept narrow so tests can swap in a recorder.
type publisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

// KafkaNotifier publishes domain events to per-aggregate topics.
// Publish failures are logged and swallowed: losing an event must not
// roll back a reservation or an order.
type KafkaNotifier struct {
	reservations publisher
	orders       publisher
	source       string
	log          *logger.Logger
}

func NewKafkaNotifier(reservations, orders publisher, source string, log *logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		reservations: reservations,
		orders:       orders,
		source:       source,
		log:          log,
	}
}

func (n *KafkaNotifier) publish(ctx context.Context, p publisher, eventType, key string, payload any) {
	if p == nil {
		return
	}

	msg := kafka.NewMessage().
		WithKey(key).
		WithValue(payload).
		WithEventType(eventType).
		WithSchemaVersion(SchemaVersion).
		WithSource(n.source).
		Build()

	if err := p.Publish(ctx, msg); err != nil {
		n.log.Error("Failed to publish event",
			"event_type", eventType,
			"key", key,
			"error", err.Error(),
		)
	}
}

func (n *KafkaNotifier) ReservationCreated(ctx context.Context, reservation *model.Reservation) {
	n.publish(ctx, n.reservations, TypeReservationCreated, reservation.ID, ReservationCreated{
		ReservationID: reservation.ID,
		Name:          reservation.Name,
		StartTime:     reservation.StartTime,
		DurationMin:   reservation.DurationMin,
		PartySize:     reservation.PartySize,
		Seats:         reservation.Seats,
		CreatedAt:     reservation.CreatedAt,
	})
}

func (n *KafkaNotifier) ReservationDeleted(ctx context.Context, reservationID string) {
	n.publish(ctx, n.reservations, TypeReservationDeleted, reservationID, ReservationDeleted{
		ReservationID: reservationID,
		DeletedAt:     time.Now(),
	})
}

func (n *KafkaNotifier) OrderPlaced(ctx context.Context, order *model.Order) {
	n.publish(ctx, n.orders, TypeOrderPlaced, strconv.Itoa(order.Seat), OrderPlaced{
		OrderID:   order.ID,
		Seat:      order.Seat,
		Salt:      order.Salt,
		Drink:     order.Drink,
		Source:    order.Source,
		CreatedAt: order.CreatedAt,
	})
}

func (n *KafkaNotifier) OrderDeleted(ctx context.Context, order *model.Order) {
	n.publish(ctx, n.orders, TypeOrderDeleted, strconv.Itoa(order.Seat), OrderDeleted{
		OrderID:   order.ID,
		Seat:      order.Seat,
		DeletedAt: time.Now(),
	})
}

func (n *KafkaNotifier) OrdersCleared(ctx context.Context, count int64) {
	n.publish(ctx, n.orders, TypeOrdersCleared, "all", OrdersCleared{
		Count:     count,
		ClearedAt: time.Now(),
	})
}

// NopNotifier discards all events. Used by services that do not publish
// and by tests.
type NopNotifier struct{}

func (NopNotifier) ReservationCreated(context.Context, *model.Reservation) {}
func (NopNotifier) ReservationDeleted(context.Context, string)             {}
func (NopNotifier) OrderPlaced(context.Context, *model.Order)              {}
func (NopNotifier) OrderDeleted(context.Context, *model.Order)             {}
func (NopNotifier) OrdersCleared(context.Context, int64)                   {}
