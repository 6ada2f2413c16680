package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	ledgerHandler *handler.LedgerHandler,
	reportHandler *handler.ReportHandler,
	healthHandler *handler.HealthHandler,
	authUseCase usecase.AuthUseCase,
	sessionCookieName string,
) {
	// Public routes
	router.GET("/", authHandler.Home)
	router.GET("/signup", authHandler.ShowSignup)
	router.POST("/signup", authHandler.Signup)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/healthz", healthHandler.Healthz)

	// Everything behind the session cookie
	private := router.Group("/")
	private.Use(middleware.RequireAuth(authUseCase, sessionCookieName))
	{
		private.POST("/logout", authHandler.Logout)

		private.GET("/dashboard", reportHandler.Dashboard)
		private.GET("/insights", reportHandler.Insights)

		private.GET("/transactions", ledgerHandler.Transactions)
		private.POST("/transactions", ledgerHandler.Record)
		private.POST("/transactions/:id/delete", ledgerHandler.Delete)
		private.POST("/transactions/clear", ledgerHandler.Clear)
		private.GET("/export/csv", ledgerHandler.ExportCSV)

		private.GET("/settings", authHandler.ShowSettings)
		private.POST("/settings/passcode", authHandler.ChangePasscode)
	}
}

// SetupMiddlewares configures global middlewares for the application
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders())
}
