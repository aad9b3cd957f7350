package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"ashiyu/internal/orders/service"
	apperrors "ashiyu/pkg/errors"
	httputil "ashiyu/pkg/http"
	"ashiyu/pkg/logger"
	"ashiyu/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

func NewOrderHandler(service service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.place(w, r, h.service.Place)
}

func (h *OrderHandler) PlaceMaster(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.place(w, r, h.service.PlaceMaster)
}

func (h *OrderHandler) place(w http.ResponseWriter, r *http.Request, place func(ctx context.Context, req *model.OrderRequest) (*model.Order, error)) {
	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Place", "error", writeErr)
		}
		return
	}

	order, err := place(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Place", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, order); err != nil {
		h.log.Error("failed to write created response", "handler", "Place", "error", err)
	}
}

func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	grouped, err := h.service.GetAllBySeat(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, grouped); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *OrderHandler) DeleteAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "DeleteAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]int64{"deleted": count}); err != nil {
		h.log.Error("failed to write success response", "handler", "DeleteAll", "error", err)
	}
}

func (h *OrderHandler) Logs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Logs", "error", writeErr)
		}
		return
	}

	entries, total, err := h.service.Logs(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Logs", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, entries, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "Logs", "error", err)
	}
}

func (h *OrderHandler) SeatToken(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	seat, err := strconv.Atoi(ps.ByName("seat"))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("seat must be a number")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SeatToken", "error", writeErr)
		}
		return
	}

	token, err := h.service.SeatToken(r.Context(), seat)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SeatToken", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]any{"seat": seat, "token": token}); err != nil {
		h.log.Error("failed to write success response", "handler", "SeatToken", "error", err)
	}
}

func (h *OrderHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/orders", h.Place)
	router.POST("/api/v1/orders/master", h.PlaceMaster)
	router.GET("/api/v1/orders", h.GetAll)
	router.DELETE("/api/v1/orders/id/:id", h.Delete)
	router.DELETE("/api/v1/orders", h.DeleteAll)
	router.GET("/api/v1/orders/logs", h.Logs)
	router.GET("/api/v1/orders/token/:seat", h.SeatToken)
}
