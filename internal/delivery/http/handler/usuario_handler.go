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

// UsuarioHandler exposes admin-only user management.
type UsuarioHandler struct {
	usuarioUsecase usecase.UsuarioAdminUsecase
	validator      *validator.CustomValidator
}

func NewUsuarioHandler(usuarioUsecase usecase.UsuarioAdminUsecase, validator *validator.CustomValidator) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUsecase: usuarioUsecase,
		validator:      validator,
	}
}

func (h *UsuarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	usuario, err := h.usuarioUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailTaken:
			response.Conflict(w, "El correo ya está registrado")
		default:
			response.InternalServerError(w, "Failed to create usuario")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Usuario creado", usuario)
}

func (h *UsuarioHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	list, err := h.usuarioUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list usuarios")
		return
	}

	response.Success(w, http.StatusOK, "", list)
}

func (h *UsuarioHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Usuario no encontrado")
		return
	}

	var req dto.UpdateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	usuario, err := h.usuarioUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrUsuarioNotFound:
			response.NotFound(w, "Usuario no encontrado")
		case usecase.ErrEmailTaken:
			response.Conflict(w, "El correo ya está registrado")
		default:
			response.InternalServerError(w, "Failed to update usuario")
		}
		return
	}

	response.Success(w, http.StatusOK, "Usuario actualizado", usuario)
}

func (h *UsuarioHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := parseUintParam(r, "id")
	if id == 0 {
		response.NotFound(w, "Usuario no encontrado")
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.usuarioUsecase.Deactivate(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrUsuarioNotFound:
			response.NotFound(w, "Usuario no encontrado")
		case usecase.ErrSelfDeactivate:
			response.Error(w, http.StatusBadRequest, "No puedes desactivar tu propia cuenta", nil)
		default:
			response.InternalServerError(w, "Failed to deactivate usuario")
		}
		return
	}

	response.Success(w, http.StatusOK, "Usuario desactivado", nil)
}
