package service

import (
	"context"
	"testing"
	"time"

	"ashiyu/internal/reservations/validator"
	"ashiyu/pkg/config"
	mongotx "ashiyu/pkg/db/mongo"
	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/events"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type mockReservationRepository struct {
	createFunc          func(ctx context.Context, r *model.Reservation) error
	findByIDFunc        func(ctx context.Context, id string) (*model.Reservation, error)
	findAllFunc         func(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error)
	findOverlappingFunc func(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error)
	deleteFunc          func(ctx context.Context, id string) error
	countFunc           func(ctx context.Context) (int64, error)
}

func (m *mockReservationRepository) Create(ctx context.Context, r *model.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, r)
	}
	r.ID = "65f000000000000000000001"
	return nil
}

func (m *mockReservationRepository) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReservationRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, limit, offset)
	}
	return []*model.Reservation{}, nil
}

func (m *mockReservationRepository) FindOverlapping(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error) {
	if m.findOverlappingFunc != nil {
		return m.findOverlappingFunc(ctx, startMin, endMin)
	}
	return []*model.Reservation{}, nil
}

func (m *mockReservationRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReservationRepository) Count(ctx context.Context) (int64, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockReservationRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockSlotLockRepository struct {
	createFunc func(ctx context.Context, lock *model.SlotLock) (*model.SlotLock, error)
	deleteFunc func(ctx context.Context, lockID string) error
}

func (m *mockSlotLockRepository) Create(ctx context.Context, lock *model.SlotLock) (*model.SlotLock, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lock)
	}
	return lock, nil
}

func (m *mockSlotLockRepository) Delete(ctx context.Context, lockID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, lockID)
	}
	return nil
}

func testConfig() *config.Config {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return &config.Config{
		Log:                log,
		SeatCount:          12,
		OpenTime:           "10:00",
		CloseTime:          "20:00",
		SlotIntervalMin:    10,
		DefaultDurationMin: 30,
		SlotLockTTL:        10 * time.Second,
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       5 * time.Second,
	}
}

func newTestService(t *testing.T, repo *mockReservationRepository, lockRepo *mockSlotLockRepository) ReservationService {
	t.Helper()
	cfg := testConfig()
	svc, err := NewReservationService(repo, lockRepo, validator.NewReservationValidator(cfg.Log), events.NopNotifier{}, cfg)
	if err != nil {
		t.Fatalf("failed to build service: %v", err)
	}
	return svc
}

func validReservation() *model.Reservation {
	return &model.Reservation{
		Name:          "Tanaka",
		StartTime:     "10:10",
		DurationMin:   20,
		PartySize:     2,
		PaymentMethod: "cash",
	}
}

func TestCreate_AssignsSeatsSkippingOverlaps(t *testing.T) {
	repo := &mockReservationRepository{
		findOverlappingFunc: func(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error) {
			if startMin != 610 || endMin != 630 {
				t.Errorf("expected overlap query for [610, 630), got [%d, %d)", startMin, endMin)
			}
			return []*model.Reservation{
				{ID: "a", StartTime: "10:00", DurationMin: 30, Seats: []int{1, 2}},
			}, nil
		},
	}

	svc := newTestService(t, repo, &mockSlotLockRepository{})

	reservation := validReservation()
	if err := svc.Create(context.Background(), reservation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !seatsEqual(reservation.Seats, []int{3, 4}) {
		t.Errorf("expected seats [3 4], got %v", reservation.Seats)
	}
}

func TestCreate_InsufficientSeatsIsConflict(t *testing.T) {
	svc := newTestService(t, &mockReservationRepository{}, &mockSlotLockRepository{})

	reservation := validReservation()
	reservation.PartySize = 13

	err := svc.Create(context.Background(), reservation)
	if err == nil {
		t.Fatal("expected error for party of 13 on 12 seats")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT, got %v", err)
	}
}

func TestCreate_InvalidDuration(t *testing.T) {
	svc := newTestService(t, &mockReservationRepository{}, &mockSlotLockRepository{})

	for _, duration := range []int{15, -10, 7} {
		reservation := validReservation()
		reservation.DurationMin = duration

		err := svc.Create(context.Background(), reservation)
		if err == nil {
			t.Fatalf("duration %d: expected error", duration)
		}
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeValidation {
			t.Errorf("duration %d: expected VALIDATION_ERROR, got %v", duration, err)
		}
	}
}

func TestCreate_ZeroDurationUsesDefault(t *testing.T) {
	repo := &mockReservationRepository{}
	svc := newTestService(t, repo, &mockSlotLockRepository{})

	reservation := validReservation()
	reservation.DurationMin = 0

	if err := svc.Create(context.Background(), reservation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.DurationMin != 30 {
		t.Errorf("expected default duration 30, got %d", reservation.DurationMin)
	}
}

func TestCreate_OutsideBusinessHours(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		duration  int
		wantError bool
	}{
		{"before opening", "09:50", 30, true},
		{"at closing time", "20:00", 30, true},
		{"extends past closing", "19:40", 30, true},
		{"unaligned start", "10:05", 30, true},
		{"ends exactly at closing", "19:30", 30, false},
		{"first slot of the day", "10:00", 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &mockReservationRepository{}, &mockSlotLockRepository{})

			reservation := validReservation()
			reservation.StartTime = tt.start
			reservation.DurationMin = tt.duration

			err := svc.Create(context.Background(), reservation)
			if tt.wantError {
				appErr := apperrors.AsAppError(err)
				if appErr == nil || appErr.Code != apperrors.CodeValidation {
					t.Errorf("expected VALIDATION_ERROR, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreate_SlotLockHeldByAnotherRequest(t *testing.T) {
	duplicateKey := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000}},
	}

	released := make(map[string]bool)
	lockRepo := &mockSlotLockRepository{
		createFunc: func(ctx context.Context, lock *model.SlotLock) (*model.SlotLock, error) {
			if lock.ID == "slot_lock_620" {
				return nil, duplicateKey
			}
			return lock, nil
		},
		deleteFunc: func(ctx context.Context, lockID string) error {
			released[lockID] = true
			return nil
		},
	}

	svc := newTestService(t, &mockReservationRepository{}, lockRepo)

	err := svc.Create(context.Background(), validReservation())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}

	// The lock acquired before the failure must have been released.
	if !released["slot_lock_610"] {
		t.Error("expected slot_lock_610 to be released after lock conflict")
	}
}

func TestCreate_SanitizesNameAndIgnoresClientSeats(t *testing.T) {
	repo := &mockReservationRepository{}
	svc := newTestService(t, repo, &mockSlotLockRepository{})

	reservation := validReservation()
	reservation.Name = "  Tanaka\x00  Hana  "
	reservation.Seats = []int{9, 10}

	if err := svc.Create(context.Background(), reservation); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reservation.Name != "Tanaka Hana" {
		t.Errorf("expected sanitized name, got %q", reservation.Name)
	}
	if !seatsEqual(reservation.Seats, []int{1, 2}) {
		t.Errorf("client-sent seats must be ignored, got %v", reservation.Seats)
	}
}

func TestDelete_EmptyID(t *testing.T) {
	svc := newTestService(t, &mockReservationRepository{}, &mockSlotLockRepository{})

	err := svc.Delete(context.Background(), "")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestGrid_FreedSeatsReappear(t *testing.T) {
	reservations := []*model.Reservation{
		{ID: "a", StartTime: "10:00", DurationMin: 30, Seats: []int{1, 2}},
	}
	repo := &mockReservationRepository{
		findOverlappingFunc: func(ctx context.Context, startMin, endMin int) ([]*model.Reservation, error) {
			return reservations, nil
		},
	}

	svc := newTestService(t, repo, &mockSlotLockRepository{})

	grid, err := svc.Grid(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid.Rows) != 60 {
		t.Fatalf("expected 60 rows for 10:00-20:00 on a 10 min grid, got %d", len(grid.Rows))
	}
	if !seatsEqual(grid.Rows[0].Occupied, []int{1, 2}) {
		t.Errorf("expected seats 1,2 occupied at 10:00, got %v", grid.Rows[0].Occupied)
	}
	if len(grid.Rows[3].Occupied) != 0 {
		t.Errorf("expected 10:30 row free, got occupied %v", grid.Rows[3].Occupied)
	}

	// Delete the reservation and rebuild: the seats come back.
	reservations = nil
	grid, err = svc.Grid(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(grid.Rows[0].Occupied) != 0 {
		t.Errorf("expected all seats free after deletion, got %v", grid.Rows[0].Occupied)
	}
}
