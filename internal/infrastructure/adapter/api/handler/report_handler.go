package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/chart"
)

// recentEntryCount is how many of the latest entries the dashboard shows
const recentEntryCount = 5

// ReportHandler handles the dashboard and the insights charts
type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	ledgerUseCase usecase.LedgerUseCase
	charts        *chart.Renderer
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(
	reportUseCase usecase.ReportUseCase,
	ledgerUseCase usecase.LedgerUseCase,
	charts *chart.Renderer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		ledgerUseCase: ledgerUseCase,
		charts:        charts,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Dashboard handles GET /dashboard: the overview numbers, the newest
// entries and the quick entry form
func (h *ReportHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	ctx := c.Request.Context()

	overview, err := h.reportUseCase.Overview(ctx, user.ID, entity.ListFilter{})
	if err != nil {
		h.logger.Error("Failed to build dashboard", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, gin.H{
			"Title":   "Something went wrong",
			"Message": "Could not load your dashboard.",
		}))
		return
	}

	entries, err := h.ledgerUseCase.List(ctx, user.ID, entity.ListFilter{})
	if err != nil {
		h.logger.Error("Failed to list recent entries", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		c.HTML(http.StatusInternalServerError, "error.html", pageData(c, gin.H{
			"Title":   "Something went wrong",
			"Message": "Could not load your dashboard.",
		}))
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", pageData(c, gin.H{
		"Overview":   overview,
		"Recent":     latestFirst(entries, recentEntryCount),
		"Categories": entity.DefaultCategories,
		"Today":      h.timeProvider.Now().Format(entity.DateLayout),
	}))
}

// Insights handles GET /insights: the charts page, honoring the same
// filter fields the transactions page uses
func (h *ReportHandler) Insights(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var filter dto.FilterForm
	if err := c.ShouldBindQuery(&filter); err != nil {
		filter = dto.FilterForm{}
	}

	overview, err := h.reportUseCase.Overview(c.Request.Context(), user.ID, filter.ToFilter())
	if err != nil {
		setFlash(c, userMessage(err))
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.charts.RenderInsights(c.Writer, overview); err != nil {
		h.logger.Error("Failed to render charts", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}

// latestFirst returns up to n entries, newest first. The list arrives
// oldest first from the ledger.
func latestFirst(entries []entity.Transaction, n int) []entity.Transaction {
	out := make([]entity.Transaction, 0, n)
	for i := len(entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, entries[i])
	}
	return out
}
