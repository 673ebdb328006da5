package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/dto"
	"github.com/SscSPs/pos_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// saleHandler handles HTTP requests that delete sales.
type saleHandler struct {
	deletionService portssvc.DeletionSvcFacade
}

// newSaleHandler creates a new saleHandler.
func newSaleHandler(ds portssvc.DeletionSvcFacade) *saleHandler {
	return &saleHandler{deletionService: ds}
}

// RegisterSaleRoutes registers routes related to sales. The guard handlers run
// before the destructive DELETE route only.
func RegisterSaleRoutes(rg *gin.RouterGroup, deletionService portssvc.DeletionSvcFacade, guards ...gin.HandlerFunc) {
	mustRegisterValidators()
	h := newSaleHandler(deletionService)

	sales := rg.Group("/sales")
	{
		sales.GET("/:saleID/deletion-eligibility", h.getDeletionEligibility)
		sales.DELETE("/:saleID", append(guards, h.deleteSale)...)
	}
}

// deleteSale permanently removes a sale, restoring its stock and reversing its journal.
func (h *saleHandler) deleteSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.SaleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid sale id in path", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id: " + err.Error()})
		return
	}

	var req dto.DeleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for DeleteSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("sale_id", uri.SaleID), slog.String("deleted_by", userID))
	logger.Info("Received request to delete sale")

	outcome, err := h.deletionService.DeleteSale(c.Request.Context(), uri.SaleID, req.Reason, userID)
	status := statusForError(err)
	if err != nil && status >= http.StatusInternalServerError {
		logger.Error("Sale deletion failed", slog.String("error", err.Error()))
	}
	c.JSON(status, dto.NewDeleteSaleResponse(outcome, err))
}

// getDeletionEligibility reports whether a sale can be deleted without changing anything.
func (h *saleHandler) getDeletionEligibility(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.SaleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale id: " + err.Error()})
		return
	}

	err := h.deletionService.CheckEligibility(c.Request.Context(), uri.SaleID)
	resp := dto.NewEligibilityResponse(uri.SaleID, err)
	switch status := statusForError(err); status {
	case http.StatusOK, http.StatusConflict:
		// A closed shift is an answer, not a failure.
		c.JSON(http.StatusOK, resp)
	case http.StatusNotFound:
		c.JSON(http.StatusNotFound, resp)
	default:
		logger.Error("Failed to check deletion eligibility", slog.String("sale_id", uri.SaleID), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Failed to check deletion eligibility"})
	}
}
