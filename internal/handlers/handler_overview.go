package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type overviewHandler struct {
	overviewService portssvc.OverviewSvc
}

func registerOverviewRoutes(rg *gin.RouterGroup, overviewService portssvc.OverviewSvc) {
	h := &overviewHandler{overviewService: overviewService}
	rg.GET("/overview", h.getOverview)
}

// getOverview godoc
// @Summary Compare expenses and incomes over a period
// @Description Returns both ledgers' statistics plus net income and savings rate
// @Tags stats
// @Produce json
// @Param period query string false "Period" Enums(today, week, month, year, all-time) default(month)
// @Param offset query int false "Periods back from the current one" default(0)
// @Success 200 {object} dto.FinancialOverviewResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Failure 500 {object} map[string]string "Failed to compute overview"
// @Router /overview [get]
func (h *overviewHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	overview, err := h.overviewService.FinancialOverview(c.Request.Context(), q.ToPeriod())
	if err != nil {
		respondError(c, logger, err, "compute overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialOverviewResponse(*overview))
}
