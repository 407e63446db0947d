package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// entryHandler serves one ledger kind. Expenses and incomes get one instance each.
type entryHandler struct {
	kind         domain.EntryKind
	entryService portssvc.EntrySvcFacade
	monthService portssvc.MonthSvc
	statsService portssvc.StatsSvc
}

func newEntryHandler(kind domain.EntryKind, services *portssvc.ServiceContainer) *entryHandler {
	return &entryHandler{
		kind:         kind,
		entryService: services.Entries,
		monthService: services.Months,
		statsService: services.Stats,
	}
}

// registerEntryRoutes registers the routes of one ledger kind under /{kind}s.
func registerEntryRoutes(rg *gin.RouterGroup, kind domain.EntryKind, services *portssvc.ServiceContainer) {
	h := newEntryHandler(kind, services)

	entries := rg.Group("/" + kind.Plural())
	{
		entries.POST("", h.createEntry)
		entries.GET("/months", h.listMonths)
		entries.GET("/months/:offset", h.getMonthPage)
		entries.GET("/stats", h.getStats)
		entries.GET("/groups/usage", h.getGroupUsage)
		entries.DELETE("/groups/:group", h.trashGroup)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.trashEntry)
	}
}

func (h *entryHandler) logger(c *gin.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("kind", string(h.kind)))
}

// createEntry godoc
// @Summary Record an expense or an income
// @Description Expenses read "category" and "paymentMethod", incomes read "source"
// @Tags entries
// @Accept json
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param entry body dto.CreateEntryRequest true "Entry"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Router /{kind} [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := h.logger(c)

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), h.kind, req)
	if err != nil {
		respondError(c, logger, err, "create "+string(h.kind))
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(*entry))
}

// getEntry godoc
// @Summary Get an entry by id
// @Tags entries
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /{kind}/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := h.logger(c)

	entry, err := h.entryService.GetEntry(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "get "+string(h.kind))
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// updateEntry godoc
// @Summary Replace an entry
// @Description Every mutable field is replaced. An update identical to the stored entry is rejected.
// @Tags entries
// @Accept json
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param id path int true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Entry"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Entry not found or deleted"
// @Failure 409 {object} map[string]string "Nothing to update"
// @Router /{kind}/{id} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := h.logger(c).With(slog.String("entry_id", c.Param("id")))

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), h.kind, c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "update "+string(h.kind))
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// trashEntry godoc
// @Summary Move an entry to the trash
// @Tags entries
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param id path int true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Entry not found or already deleted"
// @Router /{kind}/{id} [delete]
func (h *entryHandler) trashEntry(c *gin.Context) {
	logger := h.logger(c).With(slog.String("entry_id", c.Param("id")))

	if err := h.entryService.TrashEntry(c.Request.Context(), h.kind, c.Param("id")); err != nil {
		respondError(c, logger, err, "delete "+string(h.kind))
		return
	}

	c.Status(http.StatusNoContent)
}

// listMonths godoc
// @Summary List the months holding entries
// @Description Each month carries its offset from the current month and its entry count
// @Tags months
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Success 200 {object} dto.AvailableMonthsResponse
// @Failure 500 {object} map[string]string "Failed to list months"
// @Router /{kind}/months [get]
func (h *entryHandler) listMonths(c *gin.Context) {
	logger := h.logger(c)

	months, err := h.monthService.AvailableMonths(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, logger, err, "list "+h.kind.Plural()+" months")
		return
	}

	c.JSON(http.StatusOK, dto.AvailableMonthsResponse{Kind: string(h.kind), Months: months})
}

// getMonthPage godoc
// @Summary Get every entry of one calendar month
// @Tags months
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param offset path int true "Months back from the current month"
// @Success 200 {object} dto.MonthPageResponse
// @Failure 400 {object} map[string]string "Invalid offset"
// @Router /{kind}/months/{offset} [get]
func (h *entryHandler) getMonthPage(c *gin.Context) {
	logger := h.logger(c)

	offset, err := strconv.Atoi(c.Param("offset"))
	if err != nil {
		logger.Warn("Invalid month offset", slog.String("offset", c.Param("offset")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month offset must be an integer"})
		return
	}

	page, err := h.monthService.MonthPage(c.Request.Context(), h.kind, offset)
	if err != nil {
		respondError(c, logger, err, "fetch "+h.kind.Plural()+" month")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthPageResponse(h.kind, *page))
}

// getStats godoc
// @Summary Aggregate entries over a period
// @Tags stats
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param period query string false "Period" Enums(today, week, month, year, all-time) default(month)
// @Param offset query int false "Periods back from the current one" default(0)
// @Success 200 {object} dto.PeriodStatsResponse
// @Failure 400 {object} map[string]string "Invalid period"
// @Router /{kind}/stats [get]
func (h *entryHandler) getStats(c *gin.Context) {
	logger := h.logger(c)

	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid period query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	stats, err := h.statsService.PeriodStats(c.Request.Context(), h.kind, q.ToPeriod())
	if err != nil {
		respondError(c, logger, err, "compute "+string(h.kind)+" stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodStatsResponse(*stats))
}

// getGroupUsage godoc
// @Summary Count entries per category or source
// @Tags entries
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Success 200 {object} dto.GroupUsageResponse
// @Router /{kind}/groups/usage [get]
func (h *entryHandler) getGroupUsage(c *gin.Context) {
	logger := h.logger(c)

	usage, err := h.entryService.GroupUsage(c.Request.Context(), h.kind)
	if err != nil {
		respondError(c, logger, err, "count "+h.kind.GroupLabel()+" usage")
		return
	}
	if usage == nil {
		usage = []domain.GroupUsage{}
	}

	c.JSON(http.StatusOK, dto.GroupUsageResponse{Groups: usage})
}

// trashGroup godoc
// @Summary Move every entry of a category or source to the trash
// @Tags entries
// @Produce json
// @Param kind path string true "Ledger kind" Enums(expenses, incomes)
// @Param group path string true "Category or source"
// @Success 200 {object} dto.TrashGroupResponse
// @Failure 400 {object} map[string]string "Invalid group"
// @Router /{kind}/groups/{group} [delete]
func (h *entryHandler) trashGroup(c *gin.Context) {
	group := c.Param("group")
	logger := h.logger(c).With(slog.String(h.kind.GroupLabel(), group))

	n, err := h.entryService.TrashGroup(c.Request.Context(), h.kind, group)
	if err != nil {
		respondError(c, logger, err, "delete "+h.kind.GroupLabel())
		return
	}

	middleware.PosthogEvent(c, h.kind.GroupLabel()+"_trashed", map[string]any{"kind": string(h.kind), "trashed": n})
	c.JSON(http.StatusOK, dto.TrashGroupResponse{Group: group, Trashed: n})
}
