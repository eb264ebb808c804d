package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type OdontogramaHandler struct {
	odontogramaUsecase usecase.OdontogramaUsecase
	validator          *validator.CustomValidator
}

func NewOdontogramaHandler(odontogramaUsecase usecase.OdontogramaUsecase, validator *validator.CustomValidator) *OdontogramaHandler {
	return &OdontogramaHandler{
		odontogramaUsecase: odontogramaUsecase,
		validator:          validator,
	}
}

func (h *OdontogramaHandler) Get(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	odontograma, err := h.odontogramaUsecase.GetByPaciente(r.Context(), pacienteID)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to get odontograma")
		}
		return
	}

	response.Success(w, http.StatusOK, "", odontograma)
}

func (h *OdontogramaHandler) UpsertPieza(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	var req dto.UpsertPiezaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	odontograma, err := h.odontogramaUsecase.UpsertPieza(r.Context(), pacienteID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to update odontograma")
		}
		return
	}

	response.Success(w, http.StatusOK, "Pieza actualizada", odontograma)
}
