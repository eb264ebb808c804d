package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type HistorialHandler struct {
	historialUsecase usecase.HistorialUsecase
	validator        *validator.CustomValidator
}

func NewHistorialHandler(historialUsecase usecase.HistorialUsecase, validator *validator.CustomValidator) *HistorialHandler {
	return &HistorialHandler{
		historialUsecase: historialUsecase,
		validator:        validator,
	}
}

func (h *HistorialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHistorialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	historial, err := h.historialUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to create historial")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Historial registrado", historial)
}

func (h *HistorialHandler) ListByPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	list, err := h.historialUsecase.ListByPaciente(r.Context(), pacienteID)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to list historial")
		}
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

// ExportPDF streams the patient's clinical history as a PDF download.
func (h *HistorialHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	pdf, filename, err := h.historialUsecase.ExportPDF(r.Context(), pacienteID)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to export historial")
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
