package handler

import (
	"net/http"

	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
)

type LogHandler struct {
	logUsecase usecase.LogUsecase
}

func NewLogHandler(logUsecase usecase.LogUsecase) *LogHandler {
	return &LogHandler{logUsecase: logUsecase}
}

// List returns recent audit entries, newest first.
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.logUsecase.ListRecent(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list logs")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}
