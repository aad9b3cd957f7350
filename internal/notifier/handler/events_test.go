package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ashiyu/pkg/events"
	"ashiyu/pkg/kafka"
	"ashiyu/pkg/logger"
)

func newTestHandler() *EventHandler {
	return NewEventHandler(logger.New(logger.Config{Level: "error", Service: "test"}))
}

func message(eventType string, payload any) kafka.Message {
	value, _ := json.Marshal(payload)
	return kafka.NewMessage().
		WithKey("key").
		WithRawValue(value).
		WithEventType(eventType).
		Build()
}

func TestHandle_KnownEvents(t *testing.T) {
	h := newTestHandler()

	messages := []kafka.Message{
		message(events.TypeReservationCreated, events.ReservationCreated{
			ReservationID: "r1", Name: "Sato", StartTime: "12:00", PartySize: 2, Seats: []int{1, 2},
		}),
		message(events.TypeReservationDeleted, events.ReservationDeleted{ReservationID: "r1"}),
		message(events.TypeOrderPlaced, events.OrderPlaced{OrderID: "o1", Seat: 3, Drink: "Tea"}),
		message(events.TypeOrderDeleted, events.OrderDeleted{OrderID: "o1", Seat: 3}),
		message(events.TypeOrdersCleared, events.OrdersCleared{Count: 7}),
	}

	for _, msg := range messages {
		if err := h.Handle(context.Background(), msg); err != nil {
			t.Errorf("event %s: unexpected error: %v", msg.GetEventType(), err)
		}
	}
}

func TestHandle_UnknownEventTypeIsCommitted(t *testing.T) {
	h := newTestHandler()

	msg := message("reservation.exploded", map[string]string{"huh": "what"})
	if err := h.Handle(context.Background(), msg); err != nil {
		t.Errorf("unknown event type must not error, got %v", err)
	}
}

func TestHandle_UndecodablePayloadIsPermanent(t *testing.T) {
	h := newTestHandler()

	msg := kafka.NewMessage().
		WithKey("key").
		WithRawValue([]byte("{broken")).
		WithEventType(events.TypeOrderPlaced).
		Build()

	err := h.Handle(context.Background(), msg)
	if err == nil {
		t.Fatal("expected error for undecodable payload")
	}

	var kafkaErr *kafka.KafkaError
	if !errors.As(err, &kafkaErr) || kafkaErr.IsTransient() {
		t.Errorf("expected permanent kafka error, got %v", err)
	}
}
