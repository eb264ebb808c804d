package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type PacienteHandler struct {
	pacienteUsecase usecase.PacienteUsecase
	validator       *validator.CustomValidator
}

func NewPacienteHandler(pacienteUsecase usecase.PacienteUsecase, validator *validator.CustomValidator) *PacienteHandler {
	return &PacienteHandler{
		pacienteUsecase: pacienteUsecase,
		validator:       validator,
	}
}

func (h *PacienteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	paciente, err := h.pacienteUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create paciente")
		return
	}

	response.Success(w, http.StatusCreated, "Paciente creado", paciente)
}

func (h *PacienteHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.pacienteUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list pacientes")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

// Search matches by name or phone. Empty queries return an empty list
// rather than the whole table.
func (h *PacienteHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		response.Success(w, http.StatusOK, "", []dto.PacienteResponse{})
		return
	}

	pacientes, err := h.pacienteUsecase.Search(r.Context(), term)
	if err != nil {
		response.InternalServerError(w, "Failed to search pacientes")
		return
	}

	response.Success(w, http.StatusOK, "", pacientes)
}

func (h *PacienteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	paciente, err := h.pacienteUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to get paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "", paciente)
}

func (h *PacienteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	var req dto.UpdatePacienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	paciente, err := h.pacienteUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to update paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "Paciente actualizado", paciente)
}

func (h *PacienteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	if err := h.pacienteUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to delete paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "Paciente eliminado", nil)
}
