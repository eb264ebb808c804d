package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type CitaHandler struct {
	citaUsecase usecase.CitaUsecase
	validator   *validator.CustomValidator
}

func NewCitaHandler(citaUsecase usecase.CitaUsecase, validator *validator.CustomValidator) *CitaHandler {
	return &CitaHandler{
		citaUsecase: citaUsecase,
		validator:   validator,
	}
}

func (h *CitaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCitaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cita, err := h.citaUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotTaken:
			response.Conflict(w, "El horario seleccionado ya está ocupado")
		case usecase.ErrPacienteRequired:
			response.Error(w, http.StatusBadRequest, "Se requiere paciente_id o nombre_paciente", nil)
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to create cita")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Cita creada", cita)
}

// List filters by ?fecha=YYYY-MM-DD, ?doctor_id and ?paciente_id.
func (h *CitaHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := &repository.CitaFilter{
		Fecha: r.URL.Query().Get("fecha"),
	}
	if v, err := strconv.ParseUint(r.URL.Query().Get("doctor_id"), 10, 32); err == nil {
		filter.DoctorID = uint(v)
	}
	if v, err := strconv.ParseUint(r.URL.Query().Get("paciente_id"), 10, 32); err == nil {
		filter.PacienteID = uint(v)
	}

	list, err := h.citaUsecase.Search(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list citas")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

func (h *CitaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}

	cita, err := h.citaUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrCitaNotFound:
			response.NotFound(w, "Cita no encontrada")
		default:
			response.InternalServerError(w, "Failed to get cita")
		}
		return
	}

	response.Success(w, http.StatusOK, "", cita)
}

func (h *CitaHandler) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}

	var req dto.UpdateCitaEstadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cita, err := h.citaUsecase.UpdateEstado(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCitaNotFound:
			response.NotFound(w, "Cita no encontrada")
		case usecase.ErrInvalidEstado:
			response.Error(w, http.StatusBadRequest, "Estado de cita inválido", nil)
		case usecase.ErrInvalidTransition, usecase.ErrCitaTerminal:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update cita")
		}
		return
	}

	response.Success(w, http.StatusOK, "Estado actualizado", cita)
}

func (h *CitaHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}

	var req dto.RescheduleCitaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	cita, err := h.citaUsecase.Reschedule(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrCitaNotFound:
			response.NotFound(w, "Cita no encontrada")
		case usecase.ErrCitaTerminal:
			response.Conflict(w, "La cita ya está en un estado final")
		case usecase.ErrSlotTaken:
			response.Conflict(w, "El horario seleccionado ya está ocupado")
		default:
			response.InternalServerError(w, "Failed to reschedule cita")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cita reagendada", cita)
}

func (h *CitaHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Cita no encontrada")
		return
	}

	if err := h.citaUsecase.Cancel(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrCitaNotFound:
			response.NotFound(w, "Cita no encontrada")
		default:
			response.InternalServerError(w, "Failed to cancel cita")
		}
		return
	}

	response.Success(w, http.StatusOK, "Cita cancelada", nil)
}

// MarkNoShows triggers the no-show sweep on demand.
func (h *CitaHandler) MarkNoShows(w http.ResponseWriter, r *http.Request) {
	result, err := h.citaUsecase.MarkNoShows(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to sweep no-shows")
		return
	}

	response.Success(w, http.StatusOK, "Citas marcadas como no asistidas", result)
}
