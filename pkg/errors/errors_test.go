package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  New(CodeNotFound, "Reservation not found", http.StatusNotFound),
			want: "NOT_FOUND: Reservation not found",
		},
		{
			name: "with cause",
			err:  Internal("Failed to list orders", fmt.Errorf("connection refused")),
			want: "INTERNAL_ERROR: Failed to list orders (caused by: connection refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("write conflict")
	err := Internal("Failed to create reservation", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", NotFound("Reservation"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Order", "abc123"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("seat must be positive"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("seats already taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("took too long"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("orders"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Reservation", "64f0")

	if err.Details["resource"] != "Reservation" {
		t.Errorf("Details[resource] = %v, want Reservation", err.Details["resource"])
	}
	if err.Details["id"] != "64f0" {
		t.Errorf("Details[id] = %v, want 64f0", err.Details["id"])
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("already booked")
	if got := AsAppError(appErr); got != appErr {
		t.Error("AsAppError should return the same *AppError unchanged")
	}

	plain := fmt.Errorf("some storage error")
	wrapped := AsAppError(plain)
	if wrapped.Code != CodeInternal {
		t.Errorf("Code = %s, want %s", wrapped.Code, CodeInternal)
	}
	if !errors.Is(wrapped, plain) {
		t.Error("expected wrapped error to keep the original cause")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(InvalidInput("x")) {
		t.Error("IsAppError(*AppError) = false, want true")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("IsAppError(plain error) = true, want false")
	}
}
