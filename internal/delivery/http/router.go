package http

import (
	"net/http"

	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	pacienteHandler       *handler.PacienteHandler
	citaHandler           *handler.CitaHandler
	consultaHandler       *handler.ConsultaHandler
	historialHandler      *handler.HistorialHandler
	odontogramaHandler    *handler.OdontogramaHandler
	radiografiaHandler    *handler.RadiografiaHandler
	tipoConsultaHandler   *handler.TipoConsultaHandler
	inventarioHandler     *handler.InventarioHandler
	finanzasHandler       *handler.FinanzasHandler
	usuarioHandler        *handler.UsuarioHandler
	logHandler            *handler.LogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
	accessHoursMiddleware *middleware.AccessHoursMiddleware
	uploadRoot            string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	pacienteHandler *handler.PacienteHandler,
	citaHandler *handler.CitaHandler,
	consultaHandler *handler.ConsultaHandler,
	historialHandler *handler.HistorialHandler,
	odontogramaHandler *handler.OdontogramaHandler,
	radiografiaHandler *handler.RadiografiaHandler,
	tipoConsultaHandler *handler.TipoConsultaHandler,
	inventarioHandler *handler.InventarioHandler,
	finanzasHandler *handler.FinanzasHandler,
	usuarioHandler *handler.UsuarioHandler,
	logHandler *handler.LogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	accessHoursMiddleware *middleware.AccessHoursMiddleware,
	uploadRoot string,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		pacienteHandler:       pacienteHandler,
		citaHandler:           citaHandler,
		consultaHandler:       consultaHandler,
		historialHandler:      historialHandler,
		odontogramaHandler:    odontogramaHandler,
		radiografiaHandler:    radiografiaHandler,
		tipoConsultaHandler:   tipoConsultaHandler,
		inventarioHandler:     inventarioHandler,
		finanzasHandler:       finanzasHandler,
		usuarioHandler:        usuarioHandler,
		logHandler:            logHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
		accessHoursMiddleware: accessHoursMiddleware,
		uploadRoot:            uploadRoot,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/verify-2fa", r.authHandler.Verify2FA).Methods(http.MethodPost)
	auth.HandleFunc("/verify", r.authHandler.Verify).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/extend-session", r.authHandler.ExtendSession).Methods(http.MethodPost)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)
	authProtected.HandleFunc("/2fa/setup", r.authHandler.Setup2FA).Methods(http.MethodPost)
	authProtected.HandleFunc("/2fa/confirm", r.authHandler.Confirm2FA).Methods(http.MethodPost)

	// Clinic routes: any authenticated staff, gated by access hours
	// (administrators are exempt from the gate).
	clinic := api.PathPrefix("").Subrouter()
	clinic.Use(r.authMiddleware.Authenticate)
	clinic.Use(r.accessHoursMiddleware.Handle)

	// Pacientes
	clinic.HandleFunc("/pacientes", r.pacienteHandler.Create).Methods(http.MethodPost)
	clinic.HandleFunc("/pacientes", r.pacienteHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/pacientes/buscar", r.pacienteHandler.Search).Methods(http.MethodGet)
	clinic.HandleFunc("/pacientes/{id}", r.pacienteHandler.Get).Methods(http.MethodGet)
	clinic.HandleFunc("/pacientes/{id}", r.pacienteHandler.Update).Methods(http.MethodPut)
	clinic.HandleFunc("/pacientes/{id}", r.pacienteHandler.Delete).Methods(http.MethodDelete)

	// Citas
	clinic.HandleFunc("/citas", r.citaHandler.Create).Methods(http.MethodPost)
	clinic.HandleFunc("/citas", r.citaHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/citas/no-asistio", r.citaHandler.MarkNoShows).Methods(http.MethodPost)
	clinic.HandleFunc("/citas/{id}", r.citaHandler.Get).Methods(http.MethodGet)
	clinic.HandleFunc("/citas/{id}/estado", r.citaHandler.UpdateEstado).Methods(http.MethodPut)
	clinic.HandleFunc("/citas/{id}/reagendar", r.citaHandler.Reschedule).Methods(http.MethodPut)
	clinic.HandleFunc("/citas/{id}", r.citaHandler.Cancel).Methods(http.MethodDelete)

	// Consultas (doctors only)
	consultas := clinic.PathPrefix("/consultas").Subrouter()
	consultas.Use(middleware.RequireDoctor)
	consultas.HandleFunc("", r.consultaHandler.Start).Methods(http.MethodPost)
	consultas.HandleFunc("/paciente/{pacienteId}", r.consultaHandler.GetByPaciente).Methods(http.MethodGet)
	consultas.HandleFunc("/{id}", r.consultaHandler.Update).Methods(http.MethodPut)
	consultas.HandleFunc("/{id}/estado", r.consultaHandler.UpdateEstado).Methods(http.MethodPut)
	consultas.HandleFunc("/{id}/terminar", r.consultaHandler.Terminar).Methods(http.MethodPost)

	// Historial clínico
	clinic.HandleFunc("/historial/historiales-clinicos", r.historialHandler.Create).Methods(http.MethodPost)
	clinic.HandleFunc("/historial/pacientes/{pacienteId}/historial", r.historialHandler.ListByPaciente).Methods(http.MethodGet)
	clinic.HandleFunc("/historial/pacientes/{pacienteId}/historial/pdf", r.historialHandler.ExportPDF).Methods(http.MethodGet)

	// Odontograma
	clinic.HandleFunc("/odontograma/paciente/{pacienteId}", r.odontogramaHandler.Get).Methods(http.MethodGet)
	clinic.HandleFunc("/odontograma/paciente/{pacienteId}", r.odontogramaHandler.UpsertPieza).Methods(http.MethodPut)

	// Radiografías
	clinic.HandleFunc("/radiografias", r.radiografiaHandler.Create).Methods(http.MethodPost)
	clinic.HandleFunc("/radiografias/paciente/{pacienteId}", r.radiografiaHandler.ListByPaciente).Methods(http.MethodGet)
	clinic.HandleFunc("/radiografias/{id}/imagen", r.radiografiaHandler.Upload).Methods(http.MethodPost)
	clinic.HandleFunc("/radiografias/{id}/completar", r.radiografiaHandler.Complete).Methods(http.MethodPut)
	clinic.HandleFunc("/radiografias/{id}", r.radiografiaHandler.Delete).Methods(http.MethodDelete)

	// Tipos de consulta
	clinic.HandleFunc("/tipos-consulta", r.tipoConsultaHandler.List).Methods(http.MethodGet)
	clinic.HandleFunc("/tipos-consulta", r.tipoConsultaHandler.Create).Methods(http.MethodPost)
	clinic.HandleFunc("/tipos-consulta/{id}", r.tipoConsultaHandler.Update).Methods(http.MethodPut)
	clinic.HandleFunc("/tipos-consulta/{id}", r.tipoConsultaHandler.Delete).Methods(http.MethodDelete)

	// Finanzas (administrators only)
	finanzas := clinic.PathPrefix("/finanzas").Subrouter()
	finanzas.Use(middleware.RequireAdministrador)
	finanzas.HandleFunc("/transacciones", r.finanzasHandler.Create).Methods(http.MethodPost)
	finanzas.HandleFunc("/transacciones", r.finanzasHandler.List).Methods(http.MethodGet)
	finanzas.HandleFunc("/transacciones/{id}", r.finanzasHandler.Update).Methods(http.MethodPut)
	finanzas.HandleFunc("/transacciones/{id}", r.finanzasHandler.Delete).Methods(http.MethodDelete)
	finanzas.HandleFunc("/resumen", r.finanzasHandler.Resumen).Methods(http.MethodGet)
	finanzas.HandleFunc("/por-categoria", r.finanzasHandler.PorCategoria).Methods(http.MethodGet)
	finanzas.HandleFunc("/por-mes", r.finanzasHandler.PorMes).Methods(http.MethodGet)

	// Admin: user management, inventory and audit log
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdministrador)
	admin.HandleFunc("/usuarios", r.usuarioHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/usuarios", r.usuarioHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/usuarios/{id}", r.usuarioHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/usuarios/{id}", r.usuarioHandler.Deactivate).Methods(http.MethodDelete)
	admin.HandleFunc("/inventario", r.inventarioHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/inventario", r.inventarioHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/inventario/{id}", r.inventarioHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/inventario/{id}", r.inventarioHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/inventario/{id}", r.inventarioHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/logs", r.logHandler.List).Methods(http.MethodGet)

	// Uploaded radiographs (authenticated)
	uploads := r.router.PathPrefix("/uploads/").Subrouter()
	uploads.Use(r.authMiddleware.Authenticate)
	uploads.PathPrefix("/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadRoot))))

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
