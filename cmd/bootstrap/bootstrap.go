package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinic-api/config"
	deliveryHttp "dental-clinic-api/internal/delivery/http"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/delivery/http/middleware"
	"dental-clinic-api/internal/infrastructure/cache"
	"dental-clinic-api/internal/infrastructure/database"
	"dental-clinic-api/internal/infrastructure/storage"
	"dental-clinic-api/internal/repository"
	"dental-clinic-api/internal/service"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/jwt"
	"dental-clinic-api/pkg/validator"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Sweeper     *service.NoShowSweeper
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewMySQLConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db, cfg.DB.Name); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	store, err := storage.NewLocalStore(cfg.Upload)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare upload storage: %w", err)
	}

	server, sweeper := initializeServer(cfg, db, redisClient, store)
	app.Server = server
	app.Sweeper = sweeper

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store *storage.LocalStore) (*http.Server, *service.NoShowSweeper) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository()
	pacienteRepo := repository.NewPacienteRepository()
	citaRepo := repository.NewCitaRepository()
	consultaRepo := repository.NewConsultaActualRepository()
	historialRepo := repository.NewHistorialClinicoRepository()
	odontogramaRepo := repository.NewOdontogramaRepository()
	radiografiaRepo := repository.NewRadiografiaRepository()
	tipoConsultaRepo := repository.NewTipoConsultaRepository()
	inventarioRepo := repository.NewInventarioRepository()
	transaccionRepo := repository.NewTransaccionRepository()
	logRepo := repository.NewLogSistemaRepository()

	// Services
	auditService := service.NewAuditService(log, logRepo)
	reportService := service.NewReportService()
	sweeper := service.NewNoShowSweeper(db, log, citaRepo, cfg.NoShow)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, usuarioRepo, jwtService, redisClient, auditService)
	pacienteUsecase := usecase.NewPacienteUsecase(db, log, pacienteRepo)
	citaUsecase := usecase.NewCitaUsecase(db, log, citaRepo, pacienteRepo, tipoConsultaRepo, sweeper, auditService)
	consultaUsecase := usecase.NewConsultaUsecase(db, log, consultaRepo, historialRepo, pacienteRepo, citaRepo, auditService)
	historialUsecase := usecase.NewHistorialUsecase(db, log, historialRepo, pacienteRepo, reportService)
	odontogramaUsecase := usecase.NewOdontogramaUsecase(db, log, odontogramaRepo, pacienteRepo)
	radiografiaUsecase := usecase.NewRadiografiaUsecase(db, log, radiografiaRepo, pacienteRepo, store, auditService)
	tipoConsultaUsecase := usecase.NewTipoConsultaUsecase(db, log, tipoConsultaRepo)
	inventarioUsecase := usecase.NewInventarioUsecase(db, log, inventarioRepo)
	finanzasUsecase := usecase.NewFinanzasUsecase(db, log, transaccionRepo)
	usuarioAdminUsecase := usecase.NewUsuarioAdminUsecase(db, log, usuarioRepo, redisClient, auditService)
	logUsecase := usecase.NewLogUsecase(db, log, logRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	pacienteHandler := handler.NewPacienteHandler(pacienteUsecase, customValidator)
	citaHandler := handler.NewCitaHandler(citaUsecase, customValidator)
	consultaHandler := handler.NewConsultaHandler(consultaUsecase, customValidator)
	historialHandler := handler.NewHistorialHandler(historialUsecase, customValidator)
	odontogramaHandler := handler.NewOdontogramaHandler(odontogramaUsecase, customValidator)
	radiografiaHandler := handler.NewRadiografiaHandler(radiografiaUsecase, customValidator, cfg.Upload.MaxBytes)
	tipoConsultaHandler := handler.NewTipoConsultaHandler(tipoConsultaUsecase, customValidator)
	inventarioHandler := handler.NewInventarioHandler(inventarioUsecase, customValidator)
	finanzasHandler := handler.NewFinanzasHandler(finanzasUsecase, customValidator)
	usuarioHandler := handler.NewUsuarioHandler(usuarioAdminUsecase, customValidator)
	logHandler := handler.NewLogHandler(logUsecase)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()
	accessHoursMiddleware := middleware.NewAccessHoursMiddleware(cfg.AccessHours)

	router := deliveryHttp.NewRouter(
		authHandler,
		pacienteHandler,
		citaHandler,
		consultaHandler,
		historialHandler,
		odontogramaHandler,
		radiografiaHandler,
		tipoConsultaHandler,
		inventarioHandler,
		finanzasHandler,
		usuarioHandler,
		logHandler,
		authMiddleware,
		corsMiddleware,
		accessHoursMiddleware,
		store.Root(),
	)
	httpRouter := router.Setup()

	// Request logging and panic recovery around the whole router.
	chain := gorillaHandlers.RecoveryHandler()(
		gorillaHandlers.LoggingHandler(os.Stdout, httpRouter))

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: chain,
	}, sweeper
}

// Run starts the HTTP server, the no-show sweeper, and handles
// graceful shutdown
func (app *App) Run() {
	app.Sweeper.Start()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	app.Sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
