package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// AuditRepositoryFacade is the append-only deletion log.
type AuditRepositoryFacade interface {
	// AppendDeletionLog appends one entry. Entries are never modified afterwards.
	AppendDeletionLog(ctx context.Context, entry domain.DeletionLogEntry) error

	// FindDeletionLogBySaleID returns apperrors.ErrNotFound when the sale was never deleted.
	FindDeletionLogBySaleID(ctx context.Context, saleID string) (*domain.DeletionLogEntry, error)

	// ListDeletionLog returns entries newest first using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListDeletionLog(ctx context.Context, limit int, nextToken *string) ([]domain.DeletionLogEntry, *string, error)
}
