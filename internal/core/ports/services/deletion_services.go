package services

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// EligibilityValidatorSvc decides whether a sale may be deleted. It never mutates state.
type EligibilityValidatorSvc interface {
	// ValidateDeletion fails with a NotFound or ClosedShift DeletionError.
	ValidateDeletion(ctx context.Context, saleIDOrNumber string) error

	// ValidateReason fails with an EmptyReason or ReasonTooLong DeletionError.
	// On success the reason is returned unmodified.
	ValidateReason(reason string) (string, error)
}

// StockRestorerSvc returns the quantities of a sale's line items to stock.
type StockRestorerSvc interface {
	// Restore increments stock once per line item. Items missing from stock
	// become warnings; only a storage failure is returned as an error.
	Restore(ctx context.Context, items []domain.LineItem) (*domain.RestoreResult, error)
}

// ReversalPosterSvc posts the journal entries that undo a sale.
type ReversalPosterSvc interface {
	// Post appends the revenue reversal and, when the sale has a cost basis, the
	// cost-of-goods reversal.
	Post(ctx context.Context, sale domain.Sale, actor string) (*domain.ReversalResult, error)
}

// DeletionReaderSvc defines read operations around sale deletion
type DeletionReaderSvc interface {
	// CheckEligibility runs the deletion preconditions without changing anything.
	CheckEligibility(ctx context.Context, saleIDOrNumber string) error

	// GetDeletionLog returns the audit entry written when the sale was deleted.
	GetDeletionLog(ctx context.Context, saleID string) (*domain.DeletionLogEntry, error)

	// ListDeletionLog returns audit entries newest first with token-based pagination.
	ListDeletionLog(ctx context.Context, limit int, nextToken *string) ([]domain.DeletionLogEntry, *string, error)
}

// DeletionWriterSvc defines the sale deletion operation
type DeletionWriterSvc interface {
	// DeleteSale validates, restores stock, reverses the journal, removes the
	// sale and records an audit entry, in that order.
	DeleteSale(ctx context.Context, saleIDOrNumber, reason, deletedBy string) (*domain.DeletionOutcome, error)
}

// DeletionSvcFacade combines all deletion-related service interfaces
type DeletionSvcFacade interface {
	DeletionReaderSvc
	DeletionWriterSvc
}
