package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type InventarioHandler struct {
	inventarioUsecase usecase.InventarioUsecase
	validator         *validator.CustomValidator
}

func NewInventarioHandler(inventarioUsecase usecase.InventarioUsecase, validator *validator.CustomValidator) *InventarioHandler {
	return &InventarioHandler{
		inventarioUsecase: inventarioUsecase,
		validator:         validator,
	}
}

func (h *InventarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventarioUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create inventario item")
		return
	}

	response.Success(w, http.StatusCreated, "Artículo creado", item)
}

func (h *InventarioHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.inventarioUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list inventario")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

func (h *InventarioHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Artículo de inventario no encontrado")
		return
	}

	item, err := h.inventarioUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrInventarioNotFound:
			response.NotFound(w, "Artículo de inventario no encontrado")
		default:
			response.InternalServerError(w, "Failed to get inventario item")
		}
		return
	}

	response.Success(w, http.StatusOK, "", item)
}

func (h *InventarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Artículo de inventario no encontrado")
		return
	}

	var req dto.CreateInventarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventarioUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrInventarioNotFound:
			response.NotFound(w, "Artículo de inventario no encontrado")
		default:
			response.InternalServerError(w, "Failed to update inventario item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Artículo actualizado", item)
}

func (h *InventarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Artículo de inventario no encontrado")
		return
	}

	if err := h.inventarioUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrInventarioNotFound:
			response.NotFound(w, "Artículo de inventario no encontrado")
		default:
			response.InternalServerError(w, "Failed to delete inventario item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Artículo eliminado", nil)
}
