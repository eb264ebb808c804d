package jwt_test

import (
	"testing"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(expiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: expiry,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newService(8 * time.Hour)

	token, tokenID, err := svc.GenerateToken(42, "doctor@clinica.mx", "Doctor", "Ana Ruiz")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "doctor@clinica.mx", claims.Email)
	assert.Equal(t, "Doctor", claims.Rol)
	assert.Equal(t, "Ana Ruiz", claims.Nombre)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "a@b.c", "Doctor", "X")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newService(time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)

	other := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: time.Hour})
	token, _, err := other.GenerateToken(1, "a@b.c", "Doctor", "X")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}
