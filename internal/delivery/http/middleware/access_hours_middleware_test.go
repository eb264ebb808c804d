package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func serveWithRol(t *testing.T, m *AccessHoursMiddleware, rol string) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes", nil)
	if rol != "" {
		req = req.WithContext(context.WithValue(req.Context(), RolKey, rol))
	}

	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		assert.True(t, called)
	}
	return rec
}

func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 14, hour, 30, 0, 0, time.Local)
	}
}

func TestAccessHours_BlocksOutsideWindow(t *testing.T) {
	m := NewAccessHoursMiddleware(config.AccessHoursConfig{StartHour: 8, EndHour: 24})
	m.now = fixedClock(3)

	rec := serveWithRol(t, m, entity.RolSecretaria)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "El sistema no está disponible en este horario")
}

func TestAccessHours_AllowsInsideWindow(t *testing.T) {
	m := NewAccessHoursMiddleware(config.AccessHoursConfig{StartHour: 8, EndHour: 24})
	m.now = fixedClock(10)

	rec := serveWithRol(t, m, entity.RolDoctor)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessHours_AdminExempt(t *testing.T) {
	m := NewAccessHoursMiddleware(config.AccessHoursConfig{StartHour: 8, EndHour: 24})
	m.now = fixedClock(3)

	rec := serveWithRol(t, m, entity.RolAdministrador)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessHours_WindowWrappingMidnight(t *testing.T) {
	m := NewAccessHoursMiddleware(config.AccessHoursConfig{StartHour: 22, EndHour: 6})

	m.now = fixedClock(23)
	assert.Equal(t, http.StatusOK, serveWithRol(t, m, entity.RolDoctor).Code)

	m.now = fixedClock(2)
	assert.Equal(t, http.StatusOK, serveWithRol(t, m, entity.RolDoctor).Code)

	m.now = fixedClock(12)
	assert.Equal(t, http.StatusForbidden, serveWithRol(t, m, entity.RolDoctor).Code)
}
