package handler

import (
	"context"
	"fmt"

	"ashiyu/pkg/events"
	"ashiyu/pkg/kafka"
	"ashiyu/pkg/logger"
)

// EventHandler consumes reservation and order events and surfaces them
// as staff notifications. Today that means structured log lines scraped
// by the counter display; the handler is where a chime or LINE push
// would hook in.
type EventHandler struct {
	log *logger.Logger
}

func NewEventHandler(log *logger.Logger) *EventHandler {
	return &EventHandler{log: log}
}

// Handle dispatches a single message by its event-type header. Unknown
// event types are logged and committed so newer producers cannot wedge
// an older notifier.
func (h *EventHandler) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.GetEventType() {
	case events.TypeReservationCreated:
		return h.reservationCreated(msg)
	case events.TypeReservationDeleted:
		return h.reservationDeleted(msg)
	case events.TypeOrderPlaced:
		return h.orderPlaced(msg)
	case events.TypeOrderDeleted:
		return h.orderDeleted(msg)
	case events.TypeOrdersCleared:
		return h.ordersCleared(msg)
	default:
		h.log.Warn("Skipping unknown event type",
			"event_type", msg.GetEventType(),
			"event_id", msg.GetEventID(),
			"topic", msg.Topic,
		)
		return nil
	}
}

func (h *EventHandler) reservationCreated(msg kafka.Message) error {
	var event events.ReservationCreated
	if err := msg.DecodeValue(&event); err != nil {
		return decodeError(msg, err)
	}

	h.log.Info("New reservation",
		"event_id", msg.GetEventID(),
		"reservation_id", event.ReservationID,
		"name", event.Name,
		"start_time", event.StartTime,
		"duration_min", event.DurationMin,
		"party_size", event.PartySize,
		"seats", event.Seats,
	)
	return nil
}

func (h *EventHandler) reservationDeleted(msg kafka.Message) error {
	var event events.ReservationDeleted
	if err := msg.DecodeValue(&event); err != nil {
		return decodeError(msg, err)
	}

	h.log.Info("Reservation cancelled",
		"event_id", msg.GetEventID(),
		"reservation_id", event.ReservationID,
		"deleted_at", event.DeletedAt,
	)
	return nil
}

func (h *EventHandler) orderPlaced(msg kafka.Message) error {
	var event events.OrderPlaced
	if err := msg.DecodeValue(&event); err != nil {
		return decodeError(msg, err)
	}

	h.log.Info("New order",
		"event_id", msg.GetEventID(),
		"order_id", event.OrderID,
		"seat", event.Seat,
		"salt", event.Salt,
		"drink", event.Drink,
		"source", event.Source,
	)
	return nil
}

func (h *EventHandler) orderDeleted(msg kafka.Message) error {
	var event events.OrderDeleted
	if err := msg.DecodeValue(&event); err != nil {
		return decodeError(msg, err)
	}

	h.log.Info("Order removed",
		"event_id", msg.GetEventID(),
		"order_id", event.OrderID,
		"seat", event.Seat,
	)
	return nil
}

func (h *EventHandler) ordersCleared(msg kafka.Message) error {
	var event events.OrdersCleared
	if err := msg.DecodeValue(&event); err != nil {
		return decodeError(msg, err)
	}

	h.log.Info("Order board cleared",
		"event_id", msg.GetEventID(),
		"count", event.Count,
	)
	return nil
}

// decodeError marks undecodable payloads permanent so they go straight
// to the DLQ instead of retrying.
func decodeError(msg kafka.Message, err error) error {
	return kafka.NewPermanentError(
		fmt.Sprintf("failed to decode %s event %s", msg.GetEventType(), msg.GetEventID()),
		err,
	)
}
