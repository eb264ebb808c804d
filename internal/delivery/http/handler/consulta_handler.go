package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type ConsultaHandler struct {
	consultaUsecase usecase.ConsultaUsecase
	validator       *validator.CustomValidator
}

func NewConsultaHandler(consultaUsecase usecase.ConsultaUsecase, validator *validator.CustomValidator) *ConsultaHandler {
	return &ConsultaHandler{
		consultaUsecase: consultaUsecase,
		validator:       validator,
	}
}

// Start opens a consultation for a patient, attributed to the
// authenticated doctor.
func (h *ConsultaHandler) Start(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.StartConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consulta, err := h.consultaUsecase.Start(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		case usecase.ErrConsultationInProgress:
			response.Conflict(w, "El paciente ya tiene una consulta en proceso")
		default:
			response.InternalServerError(w, "Failed to start consulta")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Consulta iniciada", consulta)
}

func (h *ConsultaHandler) GetByPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Consulta no encontrada")
		return
	}

	consulta, err := h.consultaUsecase.GetByPaciente(r.Context(), pacienteID)
	if err != nil {
		switch err {
		case usecase.ErrConsultaNotFound:
			response.NotFound(w, "Consulta no encontrada")
		default:
			response.InternalServerError(w, "Failed to get consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "", consulta)
}

func (h *ConsultaHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Consulta no encontrada")
		return
	}

	var req dto.UpdateConsultaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consulta, err := h.consultaUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultaNotFound:
			response.NotFound(w, "Consulta no encontrada")
		default:
			response.InternalServerError(w, "Failed to update consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consulta actualizada", consulta)
}

func (h *ConsultaHandler) UpdateEstado(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Consulta no encontrada")
		return
	}

	var req dto.UpdateConsultaEstadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consulta, err := h.consultaUsecase.UpdateEstado(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultaNotFound:
			response.NotFound(w, "Consulta no encontrada")
		case usecase.ErrInvalidConsultaEstado:
			response.Error(w, http.StatusBadRequest, "Estado de consulta inválido", nil)
		default:
			response.InternalServerError(w, "Failed to update consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "Estado actualizado", consulta)
}

// Terminar finalizes a consultation into the clinical history.
func (h *ConsultaHandler) Terminar(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Consulta no encontrada")
		return
	}

	result, err := h.consultaUsecase.Terminar(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrConsultaNotFound:
			response.NotFound(w, "Consulta no encontrada")
		default:
			response.InternalServerError(w, "Failed to finalize consulta")
		}
		return
	}

	response.Success(w, http.StatusOK, "Consulta finalizada", result)
}
