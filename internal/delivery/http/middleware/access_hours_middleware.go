package middleware

import (
	"net/http"
	"time"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/pkg/response"
)

// AccessHoursMiddleware blocks non-administrator access outside the
// configured daily window. Administrators are exempt.
type AccessHoursMiddleware struct {
	cfg config.AccessHoursConfig
	now func() time.Time
}

func NewAccessHoursMiddleware(cfg config.AccessHoursConfig) *AccessHoursMiddleware {
	return &AccessHoursMiddleware{cfg: cfg, now: time.Now}
}

func (m *AccessHoursMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rol, _ := GetRolFromContext(r.Context())
		if rol != entity.RolAdministrador && !m.withinWindow(m.now()) {
			response.Forbidden(w, "El sistema no está disponible en este horario")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AccessHoursMiddleware) withinWindow(t time.Time) bool {
	hour := t.Hour()
	if m.cfg.StartHour <= m.cfg.EndHour {
		return hour >= m.cfg.StartHour && hour < m.cfg.EndHour
	}
	// Window wraps past midnight
	return hour >= m.cfg.StartHour || hour < m.cfg.EndHour
}
