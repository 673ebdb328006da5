package collection

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/utils/pagination"
)

const (
	defaultLogPageSize = 20
	maxLogPageSize     = 100
)

type AuditRepository struct {
	BaseRepository[domain.DeletionLogEntry]
}

// NewAuditRepository creates a repository over the append-only "deletionLog" collection.
func NewAuditRepository(store portsrepo.CollectionStore) *AuditRepository {
	return &AuditRepository{BaseRepository[domain.DeletionLogEntry]{Store: store, Key: domain.CollectionDeletionLog}}
}

// Ensure AuditRepository implements portsrepo.AuditRepositoryFacade
var _ portsrepo.AuditRepositoryFacade = (*AuditRepository)(nil)

func (r *AuditRepository) AppendDeletionLog(ctx context.Context, entry domain.DeletionLogEntry) error {
	if entry.ID == "" {
		return fmt.Errorf("%w: deletion log entry id is required", apperrors.ErrValidation)
	}
	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return r.save(ctx, entries)
}

// FindDeletionLogBySaleID returns the most recent entry for the sale.
func (r *AuditRepository) FindDeletionLogBySaleID(ctx context.Context, saleID string) (*domain.DeletionLogEntry, error) {
	entries, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].SaleID == saleID {
			entry := entries[i]
			return &entry, nil
		}
	}
	return nil, fmt.Errorf("deletion log for sale %s: %w", saleID, apperrors.ErrNotFound)
}

func (r *AuditRepository) ListDeletionLog(ctx context.Context, limit int, nextToken *string) ([]domain.DeletionLogEntry, *string, error) {
	if limit <= 0 {
		limit = defaultLogPageSize
	}
	if limit > maxLogPageSize {
		limit = maxLogPageSize
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	entries, err := r.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DeletedAt.Equal(entries[j].DeletedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].DeletedAt.After(entries[j].DeletedAt)
	})

	page := make([]domain.DeletionLogEntry, 0, limit)
	hasMore := false
	for _, e := range entries {
		if cursor != nil && !cursor.After(e.DeletedAt, e.ID) {
			continue
		}
		if len(page) == limit {
			hasMore = true
			break
		}
		page = append(page, e)
	}

	var next *string
	if hasMore {
		last := page[len(page)-1]
		token := pagination.EncodeToken(last.DeletedAt, last.ID)
		next = &token
	}
	return page, next, nil
}
