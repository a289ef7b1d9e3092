package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/apperrors"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/domain"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/dto"
	"github.com/LurkingGoo/cash-flow-sync-pilot/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the read API behind the web dashboard
type dashboardHandler struct {
	identityService portssvc.IdentitySvc
	summaryService  portssvc.SummarySvc
	catalogService  portssvc.CatalogSvc
}

func newDashboardHandler(is portssvc.IdentitySvc, ss portssvc.SummarySvc, cs portssvc.CatalogSvc) *dashboardHandler {
	return &dashboardHandler{
		identityService: is,
		summaryService:  ss,
		catalogService:  cs,
	}
}

// registerDashboardRoutes registers the per-account read routes
func registerDashboardRoutes(rg *gin.RouterGroup, is portssvc.IdentitySvc, ss portssvc.SummarySvc, cs portssvc.CatalogSvc) {
	h := newDashboardHandler(is, ss, cs)

	accounts := rg.Group("/accounts/:account_id")
	accounts.Use(h.requireAccount)
	{
		accounts.GET("/summary", h.getSummary)
		accounts.GET("/transactions", h.getTransactions)
		accounts.GET("/breakdown", h.getBreakdown)
		accounts.GET("/holdings", h.getHoldings)
		accounts.GET("/categories", h.getCategories)
		accounts.GET("/cards", h.getCards)
	}
}

// requireAccount rejects requests for accounts that do not exist before any
// per-account route runs.
func (h *dashboardHandler) requireAccount(c *gin.Context) {
	accountID := c.Param("account_id")
	if err := h.identityService.VerifyAccount(c.Request.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to verify account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Next()
}

// monthQuery resolves the month parameter, defaulting to the current month.
// The literal "all" disables the window.
func monthQuery(c *gin.Context) string {
	return c.DefaultQuery("month", time.Now().UTC().Format("2006-01"))
}

func (h *dashboardHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")
	monthKey := monthQuery(c)

	summary, err := h.summaryService.MonthlySummary(c.Request.Context(), accountID, monthKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM or 'all'"})
			return
		}
		logger.Error("Failed to build financial summary",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build financial summary"})
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

func (h *dashboardHandler) getTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")
	monthKey := monthQuery(c)

	records, err := h.summaryService.ListExpenses(c.Request.Context(), accountID, monthKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM or 'all'"})
			return
		}
		logger.Error("Failed to list transactions",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": dto.ToExpenseResponses(records)})
}

func (h *dashboardHandler) getBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")
	monthKey := monthQuery(c)

	rows, err := h.summaryService.CategoryBreakdown(c.Request.Context(), accountID, monthKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM or 'all'"})
			return
		}
		logger.Error("Failed to build category breakdown",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build category breakdown"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"breakdown": dto.ToCategoryBreakdownResponse(rows)})
}

func (h *dashboardHandler) getHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")

	holdings, total, err := h.summaryService.Holdings(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list holdings",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list holdings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToHoldingsResponse(holdings, total))
}

func (h *dashboardHandler) getCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")

	categoryType := domain.CategoryType(c.DefaultQuery("type", string(domain.CategoryExpense)))
	if categoryType != domain.CategoryExpense && categoryType != domain.CategoryStock {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category type. Use 'expense' or 'stock'"})
		return
	}

	categories, err := h.catalogService.ListCategories(c.Request.Context(), accountID, categoryType)
	if err != nil {
		logger.Error("Failed to list categories",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": dto.ToCategoryResponses(categories)})
}

func (h *dashboardHandler) getCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("account_id")

	cards, err := h.catalogService.ListCards(c.Request.Context(), accountID)
	if err != nil {
		logger.Error("Failed to list cards",
			slog.String("account_id", accountID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": dto.ToCardResponses(cards)})
}
