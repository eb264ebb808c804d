package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/infrastructure/storage"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type RadiografiaHandler struct {
	radiografiaUsecase usecase.RadiografiaUsecase
	validator          *validator.CustomValidator
	maxUploadBytes     int64
}

func NewRadiografiaHandler(radiografiaUsecase usecase.RadiografiaUsecase, validator *validator.CustomValidator, maxUploadBytes int64) *RadiografiaHandler {
	return &RadiografiaHandler{
		radiografiaUsecase: radiografiaUsecase,
		validator:          validator,
		maxUploadBytes:     maxUploadBytes,
	}
}

func (h *RadiografiaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRadiografiaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	var doctorID *uint
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		doctorID = &userID
	}

	radiografia, err := h.radiografiaUsecase.Create(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPacienteNotFound:
			response.NotFound(w, "Paciente no encontrado")
		default:
			response.InternalServerError(w, "Failed to create radiografia")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Estudio solicitado", radiografia)
}

func (h *RadiografiaHandler) ListByPaciente(w http.ResponseWriter, r *http.Request) {
	pacienteID := parseUintParam(r, "pacienteId")
	if pacienteID == 0 {
		response.NotFound(w, "Paciente no encontrado")
		return
	}

	radiografias, err := h.radiografiaUsecase.ListByPaciente(r.Context(), pacienteID)
	if err != nil {
		response.InternalServerError(w, "Failed to list radiografias")
		return
	}

	response.Success(w, http.StatusOK, "", radiografias)
}

// Upload receives the study image as multipart form data. Clients send
// the file under either "imagen" or "archivo".
func (h *RadiografiaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Radiografía no encontrada")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.Error(w, http.StatusRequestEntityTooLarge, "El archivo excede el tamaño permitido", nil)
		return
	}

	file, header, err := r.FormFile("imagen")
	if err != nil {
		file, header, err = r.FormFile("archivo")
	}
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Se requiere el campo imagen o archivo", nil)
		return
	}
	defer file.Close()

	radiografia, err := h.radiografiaUsecase.AttachFile(r.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		switch err {
		case usecase.ErrRadiografiaNotFound:
			response.NotFound(w, "Radiografía no encontrada")
		case storage.ErrFileTooLarge:
			response.Error(w, http.StatusRequestEntityTooLarge, "El archivo excede el tamaño permitido", nil)
		case storage.ErrInvalidExtension:
			response.Error(w, http.StatusBadRequest, "Tipo de archivo no permitido", nil)
		case storage.ErrInvalidContent:
			response.Error(w, http.StatusBadRequest, "El contenido del archivo no coincide con su extensión", nil)
		default:
			response.InternalServerError(w, "Failed to upload archivo")
		}
		return
	}

	response.Success(w, http.StatusOK, "Archivo subido", radiografia)
}

func (h *RadiografiaHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Radiografía no encontrada")
		return
	}

	radiografia, err := h.radiografiaUsecase.Complete(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrRadiografiaNotFound:
			response.NotFound(w, "Radiografía no encontrada")
		default:
			response.InternalServerError(w, "Failed to complete radiografia")
		}
		return
	}

	response.Success(w, http.StatusOK, "Estudio completado", radiografia)
}

func (h *RadiografiaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Radiografía no encontrada")
		return
	}

	if err := h.radiografiaUsecase.Deactivate(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrRadiografiaNotFound:
			response.NotFound(w, "Radiografía no encontrada")
		default:
			response.InternalServerError(w, "Failed to delete radiografia")
		}
		return
	}

	response.Success(w, http.StatusOK, "Radiografía eliminada", nil)
}
