package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "ashiyu/pkg/errors"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type mockReservationService struct {
	createFunc func(ctx context.Context, r *model.Reservation) error
	getAllFunc func(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error)
	deleteFunc func(ctx context.Context, id string) error
	gridFunc   func(ctx context.Context) (*model.SeatGrid, error)
}

func (m *mockReservationService) Create(ctx context.Context, r *model.Reservation) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, r)
	}
	return nil
}

func (m *mockReservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	return nil, apperrors.NotFoundWithID("Reservation", id)
}

func (m *mockReservationService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, limit, offset)
	}
	return []*model.Reservation{}, 0, nil
}

func (m *mockReservationService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReservationService) Grid(ctx context.Context) (*model.SeatGrid, error) {
	if m.gridFunc != nil {
		return m.gridFunc(ctx)
	}
	return &model.SeatGrid{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestCreate_InvalidBody(t *testing.T) {
	handler := NewReservationHandler(&mockReservationService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreate_ConflictPropagates(t *testing.T) {
	mockService := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			return apperrors.Conflict("not enough free seats")
		},
	}
	handler := NewReservationHandler(mockService, testLogger())

	body := `{"name":"Tanaka","start_time":"10:10","duration_min":20,"party_size":2,"payment_method":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
}

func TestCreate_ReturnsAssignedSeats(t *testing.T) {
	mockService := &mockReservationService{
		createFunc: func(ctx context.Context, r *model.Reservation) error {
			r.ID = "65f000000000000000000001"
			r.Seats = []int{3, 4}
			return nil
		},
	}
	handler := NewReservationHandler(mockService, testLogger())

	body := `{"name":"Tanaka","start_time":"10:10","duration_min":20,"party_size":2,"payment_method":"cash"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Create(w, req, httprouter.Params{})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var envelope struct {
		Data model.Reservation `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	created := envelope.Data
	if len(created.Seats) != 2 || created.Seats[0] != 3 || created.Seats[1] != 4 {
		t.Errorf("expected seats [3 4] in response, got %v", created.Seats)
	}
}

func TestGetAll_InvalidQueryParameters(t *testing.T) {
	handler := NewReservationHandler(&mockReservationService{}, testLogger())

	for _, query := range []string{"?limit=abc", "?offset=xyz", "?limit=abc&offset=xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations"+query, nil)
		w := httptest.NewRecorder()

		handler.GetAll(w, req, httprouter.Params{})

		if w.Code != http.StatusBadRequest {
			t.Errorf("query %q: expected status 400, got %d", query, w.Code)
		}
	}
}

func TestDelete_NotFound(t *testing.T) {
	mockService := &mockReservationService{
		deleteFunc: func(ctx context.Context, id string) error {
			return apperrors.NotFoundWithID("Reservation", id)
		},
	}
	handler := NewReservationHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/id/65f000000000000000000009", nil)
	w := httptest.NewRecorder()

	handler.Delete(w, req, httprouter.Params{{Key: "id", Value: "65f000000000000000000009"}})

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGrid_Success(t *testing.T) {
	mockService := &mockReservationService{
		gridFunc: func(ctx context.Context) (*model.SeatGrid, error) {
			return &model.SeatGrid{
				OpenTime:    "10:00",
				CloseTime:   "20:00",
				IntervalMin: 10,
				Seats:       []int{1, 2, 3},
				Rows: []model.SeatGridRow{
					{Time: "10:00", Occupied: []int{1}, Free: []int{2, 3}},
				},
			}, nil
		},
	}
	handler := NewReservationHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/grid", nil)
	w := httptest.NewRecorder()

	handler.Grid(w, req, httprouter.Params{})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var envelope struct {
		Data model.SeatGrid `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if envelope.Data.OpenTime != "10:00" || len(envelope.Data.Rows) != 1 {
		t.Errorf("unexpected grid payload: %+v", envelope.Data)
	}
}
