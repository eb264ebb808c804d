package usecase

import (
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTOTP(t *testing.T) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Clinica Dental",
		AccountName: "admin@clinica.mx",
	})
	require.NoError(t, err)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)
	assert.True(t, validateTOTP(key.Secret(), code))

	// One period of clock drift stays inside the skew window.
	drifted, err := totp.GenerateCode(key.Secret(), time.Now().Add(-30*time.Second))
	require.NoError(t, err)
	assert.True(t, validateTOTP(key.Secret(), drifted))

	assert.False(t, validateTOTP(key.Secret(), "000000"))
	assert.False(t, validateTOTP("", code))
}
