package handler

import (
	"net/http"

	"ashiyu/internal/board/service"
	httputil "ashiyu/pkg/http"
	"ashiyu/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type BoardHandler struct {
	service service.BoardService
	log     *logger.Logger
}

func NewBoardHandler(service service.BoardService, log *logger.Logger) *BoardHandler {
	return &BoardHandler{
		service: service,
		log:     log,
	}
}

func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	board, err := h.service.View(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, board); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "error", err)
	}
}

func (h *BoardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/board", h.Get)
}
