package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/database"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	dbManager *database.Manager
	logger    coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(dbManager *database.Manager, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		dbManager: dbManager,
		logger:    logger,
	}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := h.dbManager.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status:   "degraded",
			Database: "down",
		})
		return
	}

	response := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
	}
	if stats, err := h.dbManager.Stats(); err == nil {
		response.Pool = &stats
	}

	c.JSON(http.StatusOK, response)
}
