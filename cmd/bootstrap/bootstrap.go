package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practice-scheduler/config"
	deliveryHttp "practice-scheduler/internal/delivery/http"
	"practice-scheduler/internal/delivery/http/handler"
	"practice-scheduler/internal/delivery/http/middleware"
	"practice-scheduler/internal/delivery/http/view"
	"practice-scheduler/internal/infrastructure/cache"
	"practice-scheduler/internal/infrastructure/database"
	"practice-scheduler/internal/repository"
	"practice-scheduler/internal/service"
	"practice-scheduler/internal/usecase"
	"practice-scheduler/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// Load reads the configuration and sets up the logger. It is all the migrate
// command needs.
func Load() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg)
	log.Info("Configuration loaded successfully")

	return cfg, log, nil
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context) (*App, error) {
	cfg, log, err := Load()
	if err != nil {
		return nil, err
	}
	app := &App{Config: cfg, Log: log}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	if cfg.IsDev() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.App.LogLevel)
	}
	log.SetLevel(level)

	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	tx := repository.NewTransactor(db)
	lookup := repository.NewLookupRepository(db)
	userRepo := repository.NewUserRepository()
	staffRepo := repository.NewStaffRepository()
	patientRepo := repository.NewPatientRepository()
	disciplineRepo := repository.NewDisciplineRepository()
	treatmentRepo := repository.NewTreatmentRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	scheduleRepo := repository.NewScheduleRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	flashService := service.NewFlashService(redisClient, log, cfg.Session.FlashTTL)

	// Initialize usecases
	scheduleUsecase := usecase.NewScheduleUsecase(tx, log, scheduleRepo, cfg.App.Location)
	staffUsecase := usecase.NewStaffUsecase(tx, log, customValidator, lookup, userRepo, staffRepo, treatmentRepo, auditService)
	patientUsecase := usecase.NewPatientUsecase(tx, log, customValidator, userRepo, patientRepo, auditService, cfg.App.Location)
	disciplineUsecase := usecase.NewDisciplineUsecase(tx, log, customValidator, lookup, disciplineRepo, auditService)
	treatmentUsecase := usecase.NewTreatmentUsecase(tx, log, customValidator, lookup, treatmentRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(tx, log, customValidator, lookup, appointmentRepo, staffRepo, patientRepo, treatmentRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(tx, log, auditLogRepo)

	// Initialize views
	renderer, err := view.NewRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	pages := handler.NewPages(renderer, flashService, log)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Schedule:    handler.NewScheduleHandler(scheduleUsecase, pages),
		Staff:       handler.NewStaffHandler(staffUsecase, disciplineUsecase, pages),
		Patient:     handler.NewPatientHandler(patientUsecase, pages),
		Discipline:  handler.NewDisciplineHandler(disciplineUsecase, pages),
		Treatment:   handler.NewTreatmentHandler(treatmentUsecase, disciplineUsecase, pages),
		Appointment: handler.NewAppointmentHandler(appointmentUsecase, pages),
		API:         handler.NewAPIHandler(scheduleUsecase, auditLogUsecase),
	}

	// Initialize middleware
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if len(cfg.Session.CSRFKey) == 0 {
		log.Warn("CSRF_KEY is not set, admin forms are not CSRF protected")
	}
	middlewares := deliveryHttp.Middlewares{
		Logging: middleware.NewLoggingMiddleware(log),
		Metrics: middleware.NewMetricsMiddleware(registry),
		Session: middleware.NewSessionMiddleware(cfg.Session),
		CSRF:    middleware.NewCSRFMiddleware(cfg.Session),
		CORS:    middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
	}

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, middlewares)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for interrupt signal
	return app.waitForShutdown(ctx, errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server
// fails to start
func (app *App) waitForShutdown(ctx context.Context, errCh <-chan error) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-ctx.Done():
		app.Log.Info("Shutting down server...")
	case serveErr = <-errCh:
		app.Log.Errorf("Failed to start server: %v", serveErr)
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
	return serveErr
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
