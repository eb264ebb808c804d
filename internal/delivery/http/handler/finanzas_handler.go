package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type FinanzasHandler struct {
	finanzasUsecase usecase.FinanzasUsecase
	validator       *validator.CustomValidator
}

func NewFinanzasHandler(finanzasUsecase usecase.FinanzasUsecase, validator *validator.CustomValidator) *FinanzasHandler {
	return &FinanzasHandler{
		finanzasUsecase: finanzasUsecase,
		validator:       validator,
	}
}

func (h *FinanzasHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransaccionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaccion, err := h.finanzasUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidTipo, usecase.ErrInvalidMonto:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create transaccion")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transacción registrada", transaccion)
}

// List filters by optional ?desde / ?hasta (YYYY-MM-DD) plus
// pagination.
func (h *FinanzasHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	desde := r.URL.Query().Get("desde")
	hasta := r.URL.Query().Get("hasta")

	list, err := h.finanzasUsecase.List(r.Context(), desde, hasta, page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list transacciones")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

func (h *FinanzasHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Transacción no encontrada")
		return
	}

	var req dto.CreateTransaccionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaccion, err := h.finanzasUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTransaccionNotFound:
			response.NotFound(w, "Transacción no encontrada")
		case usecase.ErrInvalidTipo, usecase.ErrInvalidMonto:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update transaccion")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transacción actualizada", transaccion)
}

func (h *FinanzasHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Transacción no encontrada")
		return
	}

	if err := h.finanzasUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTransaccionNotFound:
			response.NotFound(w, "Transacción no encontrada")
		default:
			response.InternalServerError(w, "Failed to delete transaccion")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transacción eliminada", nil)
}

// Resumen returns aggregated totals by tipo, categoria and month.
func (h *FinanzasHandler) Resumen(w http.ResponseWriter, r *http.Request) {
	desde := r.URL.Query().Get("desde")
	hasta := r.URL.Query().Get("hasta")

	resumen, err := h.finanzasUsecase.Resumen(r.Context(), desde, hasta)
	if err != nil {
		response.InternalServerError(w, "Failed to build resumen")
		return
	}

	response.Success(w, http.StatusOK, "", resumen)
}

func (h *FinanzasHandler) PorCategoria(w http.ResponseWriter, r *http.Request) {
	desde := r.URL.Query().Get("desde")
	hasta := r.URL.Query().Get("hasta")

	rows, err := h.finanzasUsecase.PorCategoria(r.Context(), desde, hasta)
	if err != nil {
		response.InternalServerError(w, "Failed to aggregate transacciones")
		return
	}

	response.Success(w, http.StatusOK, "", rows)
}

func (h *FinanzasHandler) PorMes(w http.ResponseWriter, r *http.Request) {
	desde := r.URL.Query().Get("desde")
	hasta := r.URL.Query().Get("hasta")

	rows, err := h.finanzasUsecase.PorMes(r.Context(), desde, hasta)
	if err != nil {
		response.InternalServerError(w, "Failed to aggregate transacciones")
		return
	}

	response.Success(w, http.StatusOK, "", rows)
}
