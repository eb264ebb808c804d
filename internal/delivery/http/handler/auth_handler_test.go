package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/jwt"
	"dental-clinic-api/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	loginFn func(context.Context, *dto.LoginRequest) (*dto.TokenResponse, error)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthUsecase) LoginWith2FA(ctx context.Context, req *dto.Login2FARequest) (*dto.TokenResponse, error) {
	return nil, usecase.ErrInvalidCredentials
}

func (f *fakeAuthUsecase) ExtendSession(ctx context.Context, claims *jwt.Claims) (*dto.TokenResponse, error) {
	return nil, usecase.ErrUserNotFound
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, userID uint, tokenID string) error {
	return nil
}

func (f *fakeAuthUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	return &dto.UserResponse{ID: userID}, nil
}

func (f *fakeAuthUsecase) Setup2FA(ctx context.Context, userID uint, req *dto.Setup2FARequest) (*dto.Setup2FAResponse, error) {
	return nil, usecase.ErrNotAdministrador
}

func (f *fakeAuthUsecase) Confirm2FA(ctx context.Context, userID uint, req *dto.Confirm2FARequest) error {
	return usecase.ErrTwoFactorNotConfigured
}

func newAuthHandler(fake *fakeAuthUsecase) *handler.AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Hour})
	return handler.NewAuthHandler(fake, validator.NewValidator(), jwtService)
}

func loginRequest(t *testing.T, email, password string) *http.Request {
	t.Helper()
	payload, err := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
}

func TestAuthHandler_Login_Success(t *testing.T) {
	fake := &fakeAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return &dto.TokenResponse{
				Token:     "signed-token",
				ExpiresIn: 28800,
				User:      &dto.UserResponse{ID: 1, Rol: "Doctor"},
			}, nil
		},
	}
	h := newAuthHandler(fake)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(t, "doctor@clinica.mx", "secret123"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	fake := &fakeAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := newAuthHandler(fake)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(t, "doctor@clinica.mx", "wrong"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Credenciales inválidas", body["message"])
}

func TestAuthHandler_Login_Requires2FA(t *testing.T) {
	fake := &fakeAuthUsecase{
		loginFn: func(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTwoFactorRequired
		},
	}
	h := newAuthHandler(fake)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(t, "admin@clinica.mx", "secret123"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeEnvelope(t, rec)
	errData := body["error"].(map[string]interface{})
	assert.Equal(t, true, errData["requires_2fa"])
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	h := newAuthHandler(&fakeAuthUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
