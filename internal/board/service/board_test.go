package service

import (
	"context"
	"errors"
	"testing"

	"ashiyu/pkg/config"
	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"
)

type stubGridSource struct {
	grid *model.SeatGrid
	err  error
}

func (s *stubGridSource) FetchGrid(ctx context.Context) (*model.SeatGrid, error) {
	return s.grid, s.err
}

type stubOrderSource struct {
	orders map[int][]*model.Order
	err    error
}

func (s *stubOrderSource) FetchBoard(ctx context.Context) (map[int][]*model.Order, error) {
	return s.orders, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: "error", Service: "test"}),
	}
}

func TestView_MergesGridAndOrders(t *testing.T) {
	grid := &model.SeatGrid{
		OpenTime:  "10:00",
		CloseTime: "20:00",
		Seats:     []int{1, 2, 3},
	}
	orders := map[int][]*model.Order{
		2: {{ID: "a", Seat: 2, Drink: "Tea"}},
	}

	svc := NewBoardService(&stubGridSource{grid: grid}, &stubOrderSource{orders: orders}, testConfig())

	board, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Grid.OpenTime != "10:00" {
		t.Errorf("grid not carried through: %+v", board.Grid)
	}
	if len(board.Orders[2]) != 1 {
		t.Errorf("orders not carried through: %+v", board.Orders)
	}
}

func TestView_ReservationServiceDown(t *testing.T) {
	svc := NewBoardService(
		&stubGridSource{err: errors.New("connection refused")},
		&stubOrderSource{orders: map[int][]*model.Order{}},
		testConfig(),
	)

	_, err := svc.View(context.Background())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeUnavailable {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestView_OrderServiceDown(t *testing.T) {
	svc := NewBoardService(
		&stubGridSource{grid: &model.SeatGrid{}},
		&stubOrderSource{err: errors.New("connection refused")},
		testConfig(),
	)

	_, err := svc.View(context.Background())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeUnavailable {
		t.Fatalf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestView_EmptyBoardIsNotNil(t *testing.T) {
	svc := NewBoardService(
		&stubGridSource{grid: &model.SeatGrid{}},
		&stubOrderSource{},
		testConfig(),
	)

	board, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Orders == nil {
		t.Error("expected empty order map, got nil")
	}
}
