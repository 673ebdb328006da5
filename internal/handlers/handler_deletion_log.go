package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type deletionLogHandler struct {
	deletionService portssvc.DeletionReaderSvc
}

// RegisterDeletionLogRoutes registers the read-only audit trail routes.
func RegisterDeletionLogRoutes(rg *gin.RouterGroup, deletionService portssvc.DeletionReaderSvc) {
	mustRegisterValidators()
	h := &deletionLogHandler{deletionService: deletionService}

	log := rg.Group("/deletion-log")
	{
		log.GET("", h.listDeletionLog)
		log.GET("/:saleID", h.getDeletionLog)
	}
}

func (h *deletionLogHandler) listDeletionLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDeletionLogParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListDeletionLog", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, next, err := h.deletionService.ListDeletionLog(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		status := statusForError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Failed to list deletion log", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to list deletion log"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDeletionLogResponse(entries, next))
}

func (h *deletionLogHandler) getDeletionLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.SaleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id: " + err.Error()})
		return
	}

	entry, err := h.deletionService.GetDeletionLog(c.Request.Context(), uri.SaleID)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			c.JSON(status, gin.H{"error": "No deletion recorded for sale " + uri.SaleID})
			return
		}
		logger.Error("Failed to get deletion log", slog.String("sale_id", uri.SaleID), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to get deletion log"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDeletionLogResponse(*entry))
}
