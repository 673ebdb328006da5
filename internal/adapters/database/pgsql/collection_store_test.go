package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDB struct {
	mock.Mock
}

func (m *mockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), args.Error(0)
}

func (m *mockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

type stubRow struct {
	value string
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

func TestPgxCollectionStore_GetMissingKey(t *testing.T) {
	db := new(mockDB)
	db.On("QueryRow", mock.Anything, mock.Anything, []any{"sales"}).Return(stubRow{err: pgx.ErrNoRows}).Once()
	store := &PgxCollectionStore{BaseRepository{Pool: db}}

	v, ok, err := store.Get(context.Background(), domain.CollectionSales)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	db.AssertExpectations(t)
}

func TestPgxCollectionStore_GetValue(t *testing.T) {
	db := new(mockDB)
	db.On("QueryRow", mock.Anything, mock.Anything, []any{"stock"}).Return(stubRow{value: `[]`}).Once()
	store := &PgxCollectionStore{BaseRepository{Pool: db}}

	v, ok, err := store.Get(context.Background(), domain.CollectionStock)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestPgxCollectionStore_GetError(t *testing.T) {
	db := new(mockDB)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(stubRow{err: errors.New("connection reset")}).Once()
	store := &PgxCollectionStore{BaseRepository{Pool: db}}

	_, _, err := store.Get(context.Background(), domain.CollectionJournal)
	assert.Error(t, err)
}

func TestPgxCollectionStore_SetWrapsWriteFailure(t *testing.T) {
	db := new(mockDB)
	db.On("Exec", mock.Anything, mock.Anything, []any{"journal", `[]`}).Return(errors.New("disk full")).Once()
	store := &PgxCollectionStore{BaseRepository{Pool: db}}

	err := store.Set(context.Background(), domain.CollectionJournal, `[]`)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageWrite)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPgxCollectionStore_SetSuccess(t *testing.T) {
	db := new(mockDB)
	db.On("Exec", mock.Anything, mock.Anything, []any{"deletionLog", `[{"id":"L1"}]`}).Return(nil).Once()
	store := &PgxCollectionStore{BaseRepository{Pool: db}}

	assert.NoError(t, store.Set(context.Background(), domain.CollectionDeletionLog, `[{"id":"L1"}]`))
	db.AssertExpectations(t)
}
