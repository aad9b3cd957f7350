package service

import (
	"context"
	"sync"

	"ashiyu/pkg/config"
	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/model"
)

// GridSource supplies the reservation occupancy grid, normally the
// reservations service over HTTP.
type GridSource interface {
	FetchGrid(ctx context.Context) (*model.SeatGrid, error)
}

// OrderSource supplies the grouped order board, normally the orders
// service over HTTP.
type OrderSource interface {
	FetchBoard(ctx context.Context) (map[int][]*model.Order, error)
}

type BoardService interface {
	View(ctx context.Context) (*model.Board, error)
}

type boardService struct {
	reservations GridSource
	orders       OrderSource
	cfg          *config.Config
}

func NewBoardService(reservations GridSource, orders OrderSource, cfg *config.Config) BoardService {
	return &boardService{
		reservations: reservations,
		orders:       orders,
		cfg:          cfg,
	}
}

// View fetches the grid and the order board concurrently and merges them.
func (s *boardService) View(ctx context.Context) (*model.Board, error) {
	var (
		wg       sync.WaitGroup
		grid     *model.SeatGrid
		orders   map[int][]*model.Order
		gridErr  error
		orderErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		grid, gridErr = s.reservations.FetchGrid(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, orderErr = s.orders.FetchBoard(ctx)
	}()
	wg.Wait()

	if gridErr != nil {
		s.cfg.Log.Error("Failed to fetch reservation grid", "error", gridErr)
		return nil, apperrors.Unavailable("Reservation service")
	}
	if orderErr != nil {
		s.cfg.Log.Error("Failed to fetch order board", "error", orderErr)
		return nil, apperrors.Unavailable("Order service")
	}

	if orders == nil {
		orders = map[int][]*model.Order{}
	}

	return &model.Board{
		Grid:   grid,
		Orders: orders,
	}, nil
}
