package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// CollectionStore is the keyed document store shared by every repository.
// Each key holds one serialized JSON array. Implementations must wrap write
// failures (quota, I/O) with apperrors.ErrStorageWrite.
type CollectionStore interface {
	// Get returns the raw JSON stored under key, and false if the key was never written.
	Get(ctx context.Context, key domain.CollectionKey) (string, bool, error)

	// Set replaces the JSON stored under key.
	Set(ctx context.Context, key domain.CollectionKey, value string) error
}
