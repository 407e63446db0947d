package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and writes it.
// Client errors carry the service message; anything else is logged and hidden.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrNoChange), errors.Is(err, apperrors.ErrDuplicate):
		status = http.StatusConflict
	}

	_ = c.Error(err)
	if status == http.StatusInternalServerError {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to " + action})
		return
	}

	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	logger.Warn("Rejected request to "+action, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": message})
}
