package dto

import (
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// SaleURI binds the sale id or sale number from the route.
type SaleURI struct {
	SaleID string `uri:"saleID" binding:"required,notblank"`
}

// DeleteSaleRequest is the body of DELETE /sales/:saleID. The reason is checked
// by the deletion service so that blank and overlong reasons get their own messages.
type DeleteSaleRequest struct {
	Reason string `json:"reason"`
}

// DeleteSaleResponse is returned for every deletion attempt, successful or not.
type DeleteSaleResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	Warnings         []string `json:"warnings,omitempty"`
	ErrorKind        string   `json:"errorKind,omitempty"`
	Stage            string   `json:"stage,omitempty"`
	SaleID           string   `json:"saleId,omitempty"`
	PostedJournalIDs []string `json:"postedJournalIds,omitempty"`
	LogEntryID       string   `json:"logEntryId,omitempty"`
}

// NewDeleteSaleResponse renders the result of DeleteSale. Warnings are only
// present on success and only when there are any.
func NewDeleteSaleResponse(outcome *domain.DeletionOutcome, err error) DeleteSaleResponse {
	if err != nil {
		resp := DeleteSaleResponse{Success: false, Message: err.Error()}
		if de, ok := apperrors.AsDeletionError(err); ok {
			resp.Message = de.Message
			resp.ErrorKind = string(de.Kind)
			resp.Stage = string(de.Stage)
			resp.SaleID = de.SaleID
		}
		return resp
	}
	if outcome == nil {
		return DeleteSaleResponse{Success: false, Message: "sale deletion returned no result"}
	}

	resp := DeleteSaleResponse{
		Success:          true,
		Message:          outcome.Message,
		SaleID:           outcome.SaleID,
		PostedJournalIDs: outcome.PostedJournalIDs,
		LogEntryID:       outcome.LogEntryID,
	}
	if len(outcome.Warnings) > 0 {
		resp.Warnings = outcome.Warnings
	}
	return resp
}

// EligibilityResponse tells a client whether a sale can currently be deleted.
type EligibilityResponse struct {
	SaleID    string `json:"saleId"`
	Eligible  bool   `json:"eligible"`
	Message   string `json:"message,omitempty"`
	ErrorKind string `json:"errorKind,omitempty"`
}

// NewEligibilityResponse renders a ValidateDeletion outcome.
func NewEligibilityResponse(saleID string, err error) EligibilityResponse {
	resp := EligibilityResponse{SaleID: saleID, Eligible: err == nil}
	if de, ok := apperrors.AsDeletionError(err); ok {
		resp.Message = de.Message
		resp.ErrorKind = string(de.Kind)
	}
	return resp
}

// ListDeletionLogParams defines query parameters for listing the deletion log.
type ListDeletionLogParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// DeletionLogResponse is one audit entry.
type DeletionLogResponse struct {
	ID              string      `json:"id"`
	SaleID          string      `json:"saleId"`
	SaleNumber      string      `json:"saleNumber"`
	SaleSnapshot    domain.Sale `json:"saleSnapshot"`
	Reason          string      `json:"reason"`
	DeletedBy       string      `json:"deletedBy"`
	DeletedAt       time.Time   `json:"deletedAt"`
	StockRestored   bool        `json:"stockRestored"`
	JournalReversed bool        `json:"journalReversed"`
	Warnings        []string    `json:"warnings"`
}

// ListDeletionLogResponse wraps a page of the deletion log.
type ListDeletionLogResponse struct {
	Entries   []DeletionLogResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToDeletionLogResponse converts a domain.DeletionLogEntry to its DTO.
func ToDeletionLogResponse(e domain.DeletionLogEntry) DeletionLogResponse {
	warnings := e.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return DeletionLogResponse{
		ID:              e.ID,
		SaleID:          e.SaleID,
		SaleNumber:      e.SaleNumber,
		SaleSnapshot:    e.SaleSnapshot,
		Reason:          e.Reason,
		DeletedBy:       e.DeletedBy,
		DeletedAt:       e.DeletedAt,
		StockRestored:   e.StockRestored,
		JournalReversed: e.JournalReversed,
		Warnings:        warnings,
	}
}

// ToListDeletionLogResponse converts a page of entries.
func ToListDeletionLogResponse(entries []domain.DeletionLogEntry, nextToken *string) ListDeletionLogResponse {
	resp := ListDeletionLogResponse{Entries: make([]DeletionLogResponse, len(entries)), NextToken: nextToken}
	for i, e := range entries {
		resp.Entries[i] = ToDeletionLogResponse(e)
	}
	return resp
}
