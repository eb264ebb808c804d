package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type TipoConsultaHandler struct {
	tipoUsecase usecase.TipoConsultaUsecase
	validator   *validator.CustomValidator
}

func NewTipoConsultaHandler(tipoUsecase usecase.TipoConsultaUsecase, validator *validator.CustomValidator) *TipoConsultaHandler {
	return &TipoConsultaHandler{
		tipoUsecase: tipoUsecase,
		validator:   validator,
	}
}

func (h *TipoConsultaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTipoConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tipo, err := h.tipoUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTipoConsultaExists:
			response.Conflict(w, "Ya existe un tipo de consulta con ese nombre")
		default:
			response.InternalServerError(w, "Failed to create tipo de consulta")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Tipo de consulta creado", tipo)
}

func (h *TipoConsultaHandler) List(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.tipoUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list tipos de consulta")
		return
	}

	response.Success(w, http.StatusOK, "", tipos)
}

func (h *TipoConsultaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Tipo de consulta no encontrado")
		return
	}

	var req dto.CreateTipoConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tipo, err := h.tipoUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTipoConsultaNotFound:
			response.NotFound(w, "Tipo de consulta no encontrado")
		case usecase.ErrTipoConsultaExists:
			response.Conflict(w, "Ya existe un tipo de consulta con ese nombre")
		default:
			response.InternalServerError(w, "Failed to update tipo de consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tipo de consulta actualizado", tipo)
}

func (h *TipoConsultaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Tipo de consulta no encontrado")
		return
	}

	if err := h.tipoUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrTipoConsultaNotFound:
			response.NotFound(w, "Tipo de consulta no encontrado")
		default:
			response.InternalServerError(w, "Failed to delete tipo de consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "Tipo de consulta eliminado", nil)
}
