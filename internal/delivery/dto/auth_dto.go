package dto

import "time"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Login2FARequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	PIN      string `json:"pin" validate:"required,min=4,max=10"`
	TOTPCode string `json:"totpCode" validate:"required,len=6"`
}

type Setup2FARequest struct {
	PIN string `json:"pin" validate:"required,min=4,max=10"`
}

type Confirm2FARequest struct {
	PIN      string `json:"pin" validate:"required,min=4,max=10"`
	TOTPCode string `json:"totpCode" validate:"required,len=6"`
}

// Response DTOs

type TokenResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
	User      *UserResponse `json:"user"`
}

type UserResponse struct {
	ID               uint      `json:"id"`
	Nombre           string    `json:"nombre"`
	Apellidos        string    `json:"apellidos"`
	Email            string    `json:"email"`
	Rol              string    `json:"rol"`
	Activo           bool      `json:"activo"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	FechaCreacion    time.Time `json:"fecha_creacion"`
}

// VerifyResponse tells the client whether the presented token is still
// usable. needs_refresh distinguishes an expired token from an invalid
// one.
type VerifyResponse struct {
	Valid bool          `json:"valid"`
	User  *UserResponse `json:"user,omitempty"`
}

type Setup2FAResponse struct {
	Secret    string `json:"secret"`
	OtpauthURL string `json:"otpauth_url"`
	QRCodePNG string `json:"qr_code_png"` // base64-encoded PNG
}
