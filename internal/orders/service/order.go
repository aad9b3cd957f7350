package service

import (
	"context"
	"errors"
	"fmt"

	orderserrors "ashiyu/internal/orders/errors"
	"ashiyu/internal/orders/repository"
	"ashiyu/internal/orders/validator"
	"ashiyu/pkg/config"
	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/events"
	"ashiyu/pkg/model"
	"ashiyu/pkg/sanitizer"
	"ashiyu/pkg/sealer"
)

type OrderService interface {
	Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
	PlaceMaster(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
	GetAllBySeat(ctx context.Context) (map[int][]*model.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
	Logs(ctx context.Context, limit int, offset int64) ([]*model.OrderLog, int64, error)
	SeatToken(ctx context.Context, seat int) (string, error)
}

type orderService struct {
	repo      repository.OrderRepository
	logRepo   repository.OrderLogRepository
	validator *validator.OrderValidator
	sealer    *sealer.Sealer
	notifier  events.Notifier
	cfg       *config.Config
}

func NewOrderService(
	repo repository.OrderRepository,
	logRepo repository.OrderLogRepository,
	validator *validator.OrderValidator,
	sealer *sealer.Sealer,
	notifier events.Notifier,
	cfg *config.Config,
) OrderService {
	return &orderService{
		repo:      repo,
		logRepo:   logRepo,
		validator: validator,
		sealer:    sealer,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// Place handles a customer order from the per-seat QR page. The seat
// token takes precedence over a client-sent seat number since tokens
// cannot be forged by editing the URL.
func (s *orderService) Place(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	seat, err := s.resolveSeat(req)
	if err != nil {
		return nil, err
	}
	return s.place(ctx, req, seat, model.OrderSourceSeat)
}

// PlaceMaster handles staff entry from the register, where the seat is
// named directly.
func (s *orderService) PlaceMaster(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if req.Seat == 0 {
		return nil, apperrors.InvalidInput("Seat is required for staff orders")
	}
	return s.place(ctx, req, req.Seat, model.OrderSourceStaff)
}

func (s *orderService) place(ctx context.Context, req *model.OrderRequest, seat int, source string) (*model.Order, error) {
	req.Salt = sanitizer.SanitizeMenuLabel(req.Salt)
	req.Drink = sanitizer.SanitizeMenuLabel(req.Drink)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Order validation failed", "error", err)
		return nil, apperrors.Validation("Order validation failed", map[string]any{"error": err.Error()})
	}

	if seat < 1 || seat > s.cfg.SeatCount {
		return nil, apperrors.Validation(
			fmt.Sprintf("Seat %d does not exist; the venue has seats 1-%d", seat, s.cfg.SeatCount),
			nil,
		)
	}

	order := &model.Order{
		Seat:   seat,
		Salt:   req.Salt,
		Drink:  req.Drink,
		Status: model.OrderStatusPending,
		Source: source,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.cfg.Log.Error("Failed to create order", "seat", seat, "error", err)
		return nil, apperrors.Internal("Failed to place order", err)
	}

	s.appendLog(ctx, order, model.OrderActionPlaced)

	s.cfg.Log.Info("Order placed",
		"id", order.ID,
		"seat", order.Seat,
		"salt", order.Salt,
		"drink", order.Drink,
		"source", order.Source,
	)
	s.notifier.OrderPlaced(ctx, order)
	return order, nil
}

func (s *orderService) resolveSeat(req *model.OrderRequest) (int, error) {
	if req.SeatToken == "" {
		return req.Seat, nil
	}

	seat, err := s.sealer.OpenSeat(req.SeatToken)
	if err != nil {
		s.cfg.Log.Warn("Rejected seat token", "error", err)
		return 0, apperrors.Validation("Seat token rejected", map[string]any{
			"error": orderserrors.ErrInvalidSeatToken.Error(),
		})
	}
	return seat, nil
}

// GetAllBySeat groups the live board by seat, each seat's orders in
// placement order.
func (s *orderService) GetAllBySeat(ctx context.Context) (map[int][]*model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list orders", "error", err)
		return nil, apperrors.Internal("Failed to retrieve orders", err)
	}

	grouped := make(map[int][]*model.Order)
	for _, order := range orders {
		grouped[order.Seat] = append(grouped[order.Seat], order)
	}
	return grouped, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Order ID cannot be empty")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return translateRepoError(err, id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return translateRepoError(err, id)
	}

	s.appendLog(ctx, order, model.OrderActionDeleted)

	s.cfg.Log.Info("Order deleted", "id", id, "seat", order.Seat)
	s.notifier.OrderDeleted(ctx, order)
	return nil
}

// DeleteAll clears the live board, typically at closing time. Every
// removed order still gets a deletion entry in the audit log.
func (s *orderService) DeleteAll(ctx context.Context) (int64, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, apperrors.Internal("Failed to list orders before clearing", err)
	}

	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to clear orders", "error", err)
		return 0, apperrors.Internal("Failed to clear orders", err)
	}

	for _, order := range orders {
		s.appendLog(ctx, order, model.OrderActionDeleted)
	}

	s.cfg.Log.Info("Order board cleared", "count", count)
	s.notifier.OrdersCleared(ctx, count)
	return count, nil
}

func (s *orderService) Logs(ctx context.Context, limit int, offset int64) ([]*model.OrderLog, int64, error) {
	count, err := s.logRepo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count order logs", "error", err)
		return nil, 0, apperrors.Internal("Failed to count order logs", err)
	}

	entries, err := s.logRepo.FindAll(ctx, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list order logs", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve order logs", err)
	}

	return entries, count, nil
}

// SeatToken mints the opaque token embedded in a seat's QR code.
func (s *orderService) SeatToken(ctx context.Context, seat int) (string, error) {
	if seat < 1 || seat > s.cfg.SeatCount {
		return "", apperrors.Validation(
			fmt.Sprintf("Seat %d does not exist; the venue has seats 1-%d", seat, s.cfg.SeatCount),
			nil,
		)
	}

	token, err := s.sealer.SealSeat(seat)
	if err != nil {
		return "", apperrors.Internal("Failed to mint seat token", err)
	}
	return token, nil
}

// appendLog records an audit entry. A failed append never fails the
// order operation itself.
func (s *orderService) appendLog(ctx context.Context, order *model.Order, action string) {
	entry := &model.OrderLog{
		OrderID: order.ID,
		Seat:    order.Seat,
		Salt:    order.Salt,
		Drink:   order.Drink,
		Action:  action,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		s.cfg.Log.Error("Failed to append order log",
			"order_id", order.ID,
			"action", action,
			"error", err,
		)
	}
}

func translateRepoError(err error, id string) error {
	if errors.Is(err, orderserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Order", id)
	}
	if errors.Is(err, orderserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid order ID format")
	}
	return apperrors.Internal("Failed to access order", err)
}
