package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
	"github.com/SscSPs/pocket_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type backupHandler struct {
	backupService portssvc.BackupSvc
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvc) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup")
	{
		backup.GET("", h.exportBackup)
		backup.POST("/restore", h.restoreBackup)
	}
}

// exportBackup godoc
// @Summary Export every live entry and both taxonomies
// @Tags backup
// @Produce json
// @Success 200 {object} dto.BackupResponse
// @Failure 500 {object} map[string]string "Failed to export backup"
// @Router /backup [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	snap, err := h.backupService.ExportSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "export backup")
		return
	}

	c.JSON(http.StatusOK, dto.ToBackupResponse(*snap))
}

// restoreBackup godoc
// @Summary Replace both ledgers and taxonomies from a backup
// @Description Deletes every stored entry and category, trashed entries included, then inserts the given rows with new ids in one transaction. Audit timestamps are kept when present. An empty categories list restores the built-in ones.
// @Tags backup
// @Accept json
// @Produce json
// @Param backup body dto.RestoreRequest true "Rows to restore"
// @Success 200 {object} dto.RestoreResponse
// @Failure 400 {object} map[string]string "Invalid backup"
// @Failure 500 {object} map[string]string "Failed to restore backup"
// @Router /backup/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind restore request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	snap, err := h.backupService.RestoreSnapshot(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "restore backup")
		return
	}

	res := dto.RestoreResponse{Expenses: len(snap.Expenses), Incomes: len(snap.Incomes), Categories: len(snap.Categories)}
	logger.Info("Backup restored",
		slog.Int("expenses", res.Expenses),
		slog.Int("incomes", res.Incomes),
		slog.Int("categories", res.Categories))
	middleware.PosthogEvent(c, "backup_restored", map[string]any{
		"expenses":   res.Expenses,
		"incomes":    res.Incomes,
		"categories": res.Categories,
	})
	c.JSON(http.StatusOK, res)
}
