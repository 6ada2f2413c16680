package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fintrack-app/fintrack/internal/domain/entity"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/domain/port/usecase"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler handles the transaction log pages and mutations
type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(
	ledgerUseCase usecase.LedgerUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// transactionsData builds everything the transactions page shows
func (h *LedgerHandler) transactionsData(c *gin.Context, filter dto.FilterForm) (gin.H, error) {
	user := middleware.CurrentUser(c)

	entries, err := h.ledgerUseCase.List(c.Request.Context(), user.ID, filter.ToFilter())
	if err != nil {
		return nil, err
	}

	return gin.H{
		"Entries":     entries,
		"Filter":      filter,
		"Filtered":    filter.HasValues(),
		"ExportQuery": filter.QueryString(),
		"Categories":  entity.DefaultCategories,
		"Today":       h.timeProvider.Now().Format(entity.DateLayout),
		"Form":        dto.RecordForm{},
	}, nil
}

// Transactions handles GET /transactions
func (h *LedgerHandler) Transactions(c *gin.Context) {
	var filter dto.FilterForm
	if err := c.ShouldBindQuery(&filter); err != nil {
		filter = dto.FilterForm{}
	}

	data, err := h.transactionsData(c, filter)
	if err != nil {
		// A bad filter value comes back as a validation error
		data, retryErr := h.transactionsData(c, dto.FilterForm{})
		if retryErr != nil {
			c.HTML(http.StatusInternalServerError, "error.html", pageData(c, gin.H{
				"Title":   "Something went wrong",
				"Message": "Could not load your transactions.",
			}))
			return
		}
		data["Error"] = userMessage(err)
		c.HTML(http.StatusBadRequest, "transactions.html", pageData(c, data))
		return
	}

	c.HTML(http.StatusOK, "transactions.html", pageData(c, data))
}

// Record handles POST /transactions. Valid entries bounce back to where
// the form was submitted from; invalid ones re-render the transactions
// page with the message inline and the typed values kept.
func (h *LedgerHandler) Record(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var form dto.RecordForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Could not read the form. Please try again.")
		c.Redirect(http.StatusSeeOther, "/transactions")
		return
	}

	_, err := h.ledgerUseCase.Record(c.Request.Context(), user.ID, form.ToInput())
	if err != nil {
		data, listErr := h.transactionsData(c, dto.FilterForm{})
		if listErr != nil {
			c.HTML(http.StatusInternalServerError, "error.html", pageData(c, gin.H{
				"Title":   "Something went wrong",
				"Message": "Could not load your transactions.",
			}))
			return
		}
		data["Error"] = userMessage(err)
		data["Form"] = form
		c.HTML(http.StatusBadRequest, "transactions.html", pageData(c, data))
		return
	}

	setFlash(c, "Entry recorded.")
	c.Redirect(http.StatusSeeOther, recordReturnTarget(c))
}

// recordReturnTarget decides where a successful record lands. Only known
// in-app pages qualify; anything else falls back to the transactions log.
func recordReturnTarget(c *gin.Context) string {
	if c.PostForm("return") == "dashboard" {
		return "/dashboard"
	}
	return "/transactions"
}

// Delete handles POST /transactions/:id/delete
func (h *LedgerHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	transactionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		setFlash(c, "Entry not found.")
		c.Redirect(http.StatusSeeOther, "/transactions")
		return
	}

	var filter dto.FilterForm
	_ = c.ShouldBind(&filter)

	if err := h.ledgerUseCase.Delete(c.Request.Context(), user.ID, transactionID); err != nil {
		setFlash(c, userMessage(err))
	} else {
		setFlash(c, "Entry deleted.")
	}
	c.Redirect(http.StatusSeeOther, "/transactions"+filter.QueryString())
}

// Clear handles POST /transactions/clear
func (h *LedgerHandler) Clear(c *gin.Context) {
	user := middleware.CurrentUser(c)

	removed, err := h.ledgerUseCase.Clear(c.Request.Context(), user.ID)
	if err != nil {
		setFlash(c, userMessage(err))
	} else {
		setFlash(c, fmt.Sprintf("Removed %d entries.", removed))
	}
	c.Redirect(http.StatusSeeOther, "/transactions")
}

// ExportCSV handles GET /export/csv. The current filter travels along in
// the query string, so the download matches what the page shows.
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var filter dto.FilterForm
	if err := c.ShouldBindQuery(&filter); err != nil {
		filter = dto.FilterForm{}
	}

	export, err := h.ledgerUseCase.ExportCSV(c.Request.Context(), user.ID, user.Username, filter.ToFilter())
	if err != nil {
		setFlash(c, userMessage(err))
		c.Redirect(http.StatusSeeOther, "/transactions")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", export.Data)
}
