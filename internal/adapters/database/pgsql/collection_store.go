package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCollectionStore keeps each collection as one JSONB document in the collections table.
type PgxCollectionStore struct {
	BaseRepository
}

// NewCollectionStore creates a CollectionStore backed by PostgreSQL.
func NewCollectionStore(pool *pgxpool.Pool) *PgxCollectionStore {
	return &PgxCollectionStore{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCollectionStore implements portsrepo.CollectionStore
var _ portsrepo.CollectionStore = (*PgxCollectionStore)(nil)

func (s *PgxCollectionStore) Get(ctx context.Context, key domain.CollectionKey) (string, bool, error) {
	query := `SELECT value::text FROM collections WHERE key = $1;`

	var value string
	err := s.Pool.QueryRow(ctx, query, string(key)).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read collection %s: %w", key, err)
	}
	return value, true, nil
}

func (s *PgxCollectionStore) Set(ctx context.Context, key domain.CollectionKey, value string) error {
	query := `
		INSERT INTO collections (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
	`
	if _, err := s.Pool.Exec(ctx, query, string(key), value); err != nil {
		return fmt.Errorf("%w: failed to write collection %s: %v", apperrors.ErrStorageWrite, key, err)
	}
	return nil
}
