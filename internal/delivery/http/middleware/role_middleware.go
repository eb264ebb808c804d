package middleware

import (
	"net/http"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of
// the required roles. Role is read from context (set by AuthMiddleware
// from JWT claims).
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rol, ok := GetRolFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRol := range allowedRoles {
				if rol == allowedRol {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdministrador is a convenience middleware for admin-only endpoints
func RequireAdministrador(next http.Handler) http.Handler {
	return RequireRole(entity.RolAdministrador)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RolDoctor)(next)
}

// RequireStaff allows any clinical or administrative staff role
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RolAdministrador, entity.RolDoctor, entity.RolSecretaria)(next)
}
