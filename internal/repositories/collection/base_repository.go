package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// BaseRepository loads and saves one collection as a JSON array of T.
type BaseRepository[T any] struct {
	Store portsrepo.CollectionStore
	Key   domain.CollectionKey
}

// load returns the decoded collection. A missing or blank key is an empty collection.
func (r *BaseRepository[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := r.Store.Get(ctx, r.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: collection %s is not valid JSON: %v", apperrors.ErrInternal, r.Key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// save replaces the stored collection. Store errors are returned unchanged so
// apperrors.ErrStorageWrite stays visible to callers.
func (r *BaseRepository[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", apperrors.ErrInternal, r.Key, err)
	}
	return r.Store.Set(ctx, r.Key, string(raw))
}
