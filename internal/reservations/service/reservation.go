package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	reservationserrors "ashiyu/internal/reservations/errors"
	"ashiyu/internal/reservations/repository"
	"ashiyu/internal/reservations/validator"
	"ashiyu/pkg/config"
	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/events"
	"ashiyu/pkg/model"
	"ashiyu/pkg/sanitizer"
	"ashiyu/pkg/timegrid"

	"go.mongodb.org/mongo-driver/mongo"
)

type ReservationService interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error)
	Delete(ctx context.Context, id string) error
	Grid(ctx context.Context) (*model.SeatGrid, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	lockRepo  repository.SlotLockRepository
	validator *validator.ReservationValidator
	notifier  events.Notifier
	grid      timegrid.Grid
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	lockRepo repository.SlotLockRepository,
	validator *validator.ReservationValidator,
	notifier events.Notifier,
	cfg *config.Config,
) (ReservationService, error) {
	grid, err := timegrid.New(cfg.OpenTime, cfg.CloseTime, cfg.SlotIntervalMin)
	if err != nil {
		return nil, fmt.Errorf("invalid business hours configuration: %w", err)
	}

	return &reservationService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		notifier:  notifier,
		grid:      grid,
		cfg:       cfg,
	}, nil
}

func (s *reservationService) Create(ctx context.Context, reservation *model.Reservation) error {
	s.applyDefaults(reservation)
	s.sanitize(reservation)
	if err := s.validate(reservation); err != nil {
		return err
	}

	slots, err := s.grid.Covered(reservation.StartTime, reservation.DurationMin)
	if err != nil {
		return translateGridError(err)
	}

	startMin := int(slots[0])
	endMin := startMin + reservation.DurationMin

	// Advisory locks over every covered slot serialize competing
	// requests for the same part of the day.
	lockIDs, err := s.acquireSlotLocks(ctx, slots)
	if err != nil {
		return err
	}
	defer s.releaseSlotLocks(ctx, lockIDs)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		existing, err := s.repo.FindOverlapping(sessCtx, startMin, endMin)
		if err != nil {
			return apperrors.Internal("Failed to check existing reservations", err)
		}

		seats, err := ResolveSeats(s.cfg.SeatCount, existing, startMin, endMin, reservation.PartySize)
		if err != nil {
			if errors.Is(err, reservationserrors.ErrInsufficientSeats) {
				return apperrors.Conflict(err.Error())
			}
			return apperrors.Internal("Failed to resolve seat assignment", err)
		}
		reservation.Seats = seats

		if err := s.repo.Create(sessCtx, reservation); err != nil {
			return apperrors.Internal("Failed to create reservation", err)
		}

		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "error", err)
		return err
	}

	s.cfg.Log.Info("Reservation created",
		"id", reservation.ID,
		"start_time", reservation.StartTime,
		"duration_min", reservation.DurationMin,
		"party_size", reservation.PartySize,
		"seats", reservation.Seats,
	)
	s.notifier.ReservationCreated(ctx, reservation)
	return nil
}

func (s *reservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		if errors.Is(err, reservationserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid reservation ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	return reservation, nil
}

func (s *reservationService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error) {
	var count int64
	var reservations []*model.Reservation
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reservations", "error", errCount)
			errCount = apperrors.Internal("Failed to count reservations", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		reservations, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reservations", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reservations", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return reservations, count, nil
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Delete(sessCtx, id); err != nil {
			if errors.Is(err, reservationserrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Reservation", id)
			}
			if errors.Is(err, reservationserrors.ErrInvalidID) {
				return apperrors.InvalidInput("Invalid reservation ID format")
			}
			return apperrors.Internal("Failed to delete reservation", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cfg.Log.Info("Reservation deleted", "id", id)
	s.notifier.ReservationDeleted(ctx, id)
	return nil
}

// Grid renders the day's occupancy. The freed seats of a deleted
// reservation reappear here immediately since the view is derived on
// every call.
func (s *reservationService) Grid(ctx context.Context) (*model.SeatGrid, error) {
	reservations, err := s.repo.FindOverlapping(ctx, int(s.grid.Open), int(s.grid.Close))
	if err != nil {
		return nil, apperrors.Internal("Failed to load reservations for grid", err)
	}

	seats := make([]int, s.cfg.SeatCount)
	for i := range seats {
		seats[i] = i + 1
	}

	slots := s.grid.Slots()
	rows := make([]model.SeatGridRow, 0, len(slots))
	for _, slot := range slots {
		slotStart := int(slot)
		slotEnd := slotStart + s.grid.IntervalMin

		occupied := make(map[int]bool)
		for _, res := range reservations {
			resStart, err := timegrid.ParseClock(res.StartTime)
			if err != nil {
				return nil, apperrors.Internal("Stored reservation has invalid start time", err)
			}
			resEnd := int(resStart) + res.DurationMin

			if int(resStart) < slotEnd && resEnd > slotStart {
				for _, seat := range res.Seats {
					occupied[seat] = true
				}
			}
		}

		row := model.SeatGridRow{
			Time:     slot.Clock(),
			Occupied: make([]int, 0),
			Free:     make([]int, 0),
		}
		for _, seat := range seats {
			if occupied[seat] {
				row.Occupied = append(row.Occupied, seat)
			} else {
				row.Free = append(row.Free, seat)
			}
		}
		rows = append(rows, row)
	}

	return &model.SeatGrid{
		OpenTime:    s.grid.Open.Clock(),
		CloseTime:   s.grid.Close.Clock(),
		IntervalMin: s.grid.IntervalMin,
		Seats:       seats,
		Rows:        rows,
	}, nil
}

// --- Helpers ---

func (s *reservationService) applyDefaults(r *model.Reservation) {
	if r.DurationMin == 0 {
		r.DurationMin = s.cfg.DefaultDurationMin
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = config.PaymentCash
	}
	// Seat assignment is the resolver's job; client-sent seats are ignored.
	r.Seats = nil
}

func (s *reservationService) sanitize(r *model.Reservation) {
	r.Name = sanitizer.SanitizeName(r.Name)
	r.Memo = sanitizer.SanitizeMemo(r.Memo)
}

func (s *reservationService) validate(reservation *model.Reservation) error {
	if err := s.validator.Validate(reservation); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return apperrors.Validation("Reservation validation failed", map[string]any{"error": err.Error()})
	}
	if reservation.PartySize > s.cfg.SeatCount {
		return apperrors.Conflict(fmt.Sprintf(
			"Party size %d exceeds the venue's %d seats",
			reservation.PartySize, s.cfg.SeatCount,
		))
	}
	return nil
}

func translateGridError(err error) error {
	switch {
	case errors.Is(err, timegrid.ErrInvalidDuration):
		return apperrors.Validation("Invalid reservation duration", map[string]any{"error": err.Error()})
	case errors.Is(err, timegrid.ErrOutsideHours):
		return apperrors.Validation("Requested time is outside business hours", map[string]any{"error": err.Error()})
	case errors.Is(err, timegrid.ErrInvalidClock):
		return apperrors.Validation("Invalid start time format", map[string]any{"error": err.Error()})
	default:
		return apperrors.Internal("Failed to compute covered slots", err)
	}
}

// acquireSlotLocks locks every covered slot in ascending order. On any
// failure the locks already held are released before returning.
func (s *reservationService) acquireSlotLocks(ctx context.Context, slots []timegrid.Slot) ([]string, error) {
	lockIDs := make([]string, 0, len(slots))

	for _, slot := range slots {
		lockID := fmt.Sprintf("slot_lock_%d", int(slot))

		lock := &model.SlotLock{
			ID:        lockID,
			ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
		}

		if _, err := s.lockRepo.Create(ctx, lock); err != nil {
			s.releaseSlotLocks(ctx, lockIDs)
			if mongo.IsDuplicateKeyError(err) {
				return nil, apperrors.Conflict("This time slot is currently being reserved by another request. Please try again.")
			}
			return nil, apperrors.Internal("Failed to acquire slot lock", err)
		}

		lockIDs = append(lockIDs, lockID)
	}

	return lockIDs, nil
}

func (s *reservationService) releaseSlotLocks(ctx context.Context, lockIDs []string) {
	for _, lockID := range lockIDs {
		if err := s.lockRepo.Delete(ctx, lockID); err != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", err)
		}
	}
}
