package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/jwt"
	"dental-clinic-api/pkg/response"
	"dental-clinic-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// Login handles password authentication
// @Summary Login user
// @Description Login with email and password; administrators with 2FA enabled must use /auth/verify-2fa
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "Credenciales inválidas")
		case usecase.ErrTwoFactorRequired:
			response.Error(w, http.StatusForbidden, "Se requiere verificación en dos pasos",
				map[string]bool{"requires_2fa": true})
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Verify2FA handles the full three-factor admin login
// @Summary Login with two-factor verification
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.Login2FARequest true "2FA Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/verify-2fa [post]
func (h *AuthHandler) Verify2FA(w http.ResponseWriter, r *http.Request) {
	var req dto.Login2FARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.LoginWith2FA(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials, usecase.ErrInvalidTwoFactor:
			response.Unauthorized(w, "Credenciales inválidas")
		case usecase.ErrTwoFactorNotConfigured:
			response.Error(w, http.StatusConflict, "La verificación en dos pasos no está configurada", nil)
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Verify reports whether the presented token is still usable without
// requiring the auth middleware, so expired tokens get a structured
// needs_refresh answer instead of a plain 401.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" || tokenString == authHeader {
		response.Error(w, http.StatusUnauthorized, "Missing token", map[string]bool{"needs_auth": true})
		return
	}

	claims, err := h.jwtService.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			response.Error(w, http.StatusUnauthorized, "Token expired", map[string]bool{"needs_refresh": true})
			return
		}
		response.Error(w, http.StatusUnauthorized, "Invalid token", map[string]bool{"needs_auth": true})
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	response.Success(w, http.StatusOK, "Token valid", &dto.VerifyResponse{Valid: true, User: user})
}

// ExtendSession reissues a fresh full-length token for the
// authenticated session and revokes the current one.
func (h *AuthHandler) ExtendSession(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	tokens, err := h.authUsecase.ExtendSession(r.Context(), claims)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.Unauthorized(w, "Usuario no encontrado")
		default:
			response.InternalServerError(w, "Failed to extend session")
		}
		return
	}

	response.Success(w, http.StatusOK, "Session extended", tokens)
}

// Logout revokes the current token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logged out successfully", nil)
}

// GetCurrentUser returns the authenticated user's profile.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		response.NotFound(w, "Usuario no encontrado")
		return
	}

	response.Success(w, http.StatusOK, "", user)
}

// Setup2FA generates a TOTP secret and provisioning QR for the
// authenticated administrator.
func (h *AuthHandler) Setup2FA(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.Setup2FARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	setup, err := h.authUsecase.Setup2FA(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrNotAdministrador:
			response.Forbidden(w, "Solo los administradores pueden configurar 2FA")
		default:
			response.InternalServerError(w, "Failed to setup 2FA")
		}
		return
	}

	response.Success(w, http.StatusOK, "2FA setup generated", setup)
}

// Confirm2FA verifies PIN + TOTP and enables two-factor login.
func (h *AuthHandler) Confirm2FA(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.Confirm2FARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.Confirm2FA(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrInvalidTwoFactor:
			response.Unauthorized(w, "Código o PIN incorrecto")
		case usecase.ErrTwoFactorNotConfigured:
			response.Error(w, http.StatusConflict, "Primero debes generar la configuración 2FA", nil)
		default:
			response.InternalServerError(w, "Failed to confirm 2FA")
		}
		return
	}

	response.Success(w, http.StatusOK, "2FA enabled", nil)
}

// claimsFromContext rebuilds token claims from the values the auth
// middleware stored.
func claimsFromContext(r *http.Request) (*jwt.Claims, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, false
	}
	email, _ := middleware.GetEmailFromContext(r.Context())
	rol, _ := middleware.GetRolFromContext(r.Context())
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	return &jwt.Claims{
		UserID:  userID,
		Email:   email,
		Rol:     rol,
		TokenID: tokenID,
	}, true
}
