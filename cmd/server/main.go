package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/auth"
	ledgerUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/ledger"
	reportUseCase "github.com/fintrack-app/fintrack/internal/domain/usecase/report"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/routes"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/auth"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/chart"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/database"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/logger"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/repository"
	timeProvider "github.com/fintrack-app/fintrack/internal/infrastructure/adapter/time"
	"github.com/fintrack-app/fintrack/internal/infrastructure/config"
	"github.com/fintrack-app/fintrack/web"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction(),
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))

	// Setup database configuration
	dbConfig := &database.Config{
		Path:            cfg.Database.Path,
		BusyTimeout:     time.Duration(cfg.Database.BusyTimeoutMs) * time.Millisecond,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   200 * time.Millisecond,
	}
	if err := dbConfig.Validate(); err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Open the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to open database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Ensure the schema exists
	if err := database.Bootstrap(dbManager.DB()); err != nil {
		appLogger.Error("Failed to prepare database schema", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	sessionRepo := repository.NewSessionRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)

	// Unit of work (transaction manager)
	uow := dbManager.CreateUnitOfWork()

	// Initialize use cases
	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewRandomTokenSource()

	authUseCaseImpl := authUseCase.NewAuthUseCase(
		userRepo,
		sessionRepo,
		uow,
		hasher,
		tokens,
		coreport.Duration(cfg.Session.TTL),
		tp,
		appLogger,
	)
	ledgerUseCaseImpl := ledgerUseCase.NewLedgerUseCase(transactionRepo, tp, appLogger)
	reportUseCaseImpl := reportUseCase.NewReportUseCase(transactionRepo, appLogger)

	// Drop sessions that expired while the server was down
	sweepCtx, cancelSweep := dbManager.WithTimeout(context.Background())
	if removed, err := sessionRepo.DeleteExpired(sweepCtx, tp.Now()); err != nil {
		appLogger.Warn("Failed to sweep expired sessions", map[string]any{
			"error": err.Error(),
		})
	} else if removed > 0 {
		appLogger.Info("Removed expired sessions", map[string]any{
			"count": removed,
		})
	}
	cancelSweep()

	// Initialize API handlers
	cookie := handler.CookieSettings{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.CookieSecure,
	}
	authHandler := handler.NewAuthHandler(authUseCaseImpl, cookie, appLogger)
	ledgerHandler := handler.NewLedgerHandler(ledgerUseCaseImpl, tp, appLogger)
	reportHandler := handler.NewReportHandler(reportUseCaseImpl, ledgerUseCaseImpl, chart.NewRenderer(), tp, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, appLogger)

	// Load the embedded UI
	templates, err := web.Templates()
	if err != nil {
		appLogger.Error("Failed to parse templates", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	staticFS, err := web.Static()
	if err != nil {
		appLogger.Error("Failed to load static assets", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize Gin router
	router := gin.New()
	router.SetHTMLTemplate(templates)
	router.StaticFS("/static", http.FS(staticFS))

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(
		router,
		authHandler,
		ledgerHandler,
		reportHandler,
		healthHandler,
		authUseCaseImpl,
		cfg.Session.CookieName,
	)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": server.Addr,
			"env":     cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	_ = appLogger.Flush()
}
