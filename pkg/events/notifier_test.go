package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ashiyu/pkg/kafka"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"
)

type recordingPublisher struct {
	published []kafka.Message
	err       error
}

func (p *recordingPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	p.published = append(p.published, msg)
	return p.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestReservationCreated_PublishesToReservationTopic(t *testing.T) {
	reservations := &recordingPublisher{}
	orders := &recordingPublisher{}
	n := NewKafkaNotifier(reservations, orders, "reservations", testLogger())

	n.ReservationCreated(context.Background(), &model.Reservation{
		ID:          "65f000000000000000000001",
		Name:        "Sato",
		StartTime:   "12:00",
		DurationMin: 30,
		PartySize:   2,
		Seats:       []int{1, 2},
	})

	if len(reservations.published) != 1 {
		t.Fatalf("expected 1 message on reservation publisher, got %d", len(reservations.published))
	}
	if len(orders.published) != 0 {
		t.Errorf("order publisher must not receive reservation events")
	}

	msg := reservations.published[0]
	if msg.Key != "65f000000000000000000001" {
		t.Errorf("key must be the reservation ID, got %q", msg.Key)
	}
	if msg.GetEventType() != TypeReservationCreated {
		t.Errorf("expected event type %q, got %q", TypeReservationCreated, msg.GetEventType())
	}
	if msg.GetEventID() == "" {
		t.Error("event ID must be stamped")
	}

	var payload ReservationCreated
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		t.Fatalf("payload not decodable: %v", err)
	}
	if payload.PartySize != 2 || len(payload.Seats) != 2 {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestOrderPlaced_KeyedBySeat(t *testing.T) {
	orders := &recordingPublisher{}
	n := NewKafkaNotifier(nil, orders, "orders", testLogger())

	n.OrderPlaced(context.Background(), &model.Order{ID: "o1", Seat: 7, Drink: "Tea"})

	if len(orders.published) != 1 {
		t.Fatalf("expected 1 message, got %d", len(orders.published))
	}
	if orders.published[0].Key != "7" {
		t.Errorf("expected key \"7\", got %q", orders.published[0].Key)
	}
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	orders := &recordingPublisher{err: errors.New("broker unreachable")}
	n := NewKafkaNotifier(nil, orders, "orders", testLogger())

	// Must not panic or propagate the error.
	n.OrderDeleted(context.Background(), &model.Order{ID: "o1", Seat: 3})
	n.OrdersCleared(context.Background(), 5)

	if len(orders.published) != 2 {
		t.Errorf("expected both publishes attempted, got %d", len(orders.published))
	}
}

func TestNilPublisherIsSkipped(t *testing.T) {
	n := NewKafkaNotifier(nil, nil, "test", testLogger())

	n.ReservationCreated(context.Background(), &model.Reservation{ID: "r1"})
	n.ReservationDeleted(context.Background(), "r1")
	n.OrderPlaced(context.Background(), &model.Order{ID: "o1", Seat: 1})
}
