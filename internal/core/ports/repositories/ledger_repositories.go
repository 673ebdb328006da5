package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// LedgerReader defines read operations for the journal and chart of accounts
type LedgerReader interface {
	// ListPostings returns every journal posting in append order.
	ListPostings(ctx context.Context) ([]domain.JournalPosting, error)

	// FindAccount returns apperrors.ErrNotFound when code is not in the chart of accounts.
	FindAccount(ctx context.Context, code string) (*domain.Account, error)
}

// LedgerWriter defines write operations for the journal
type LedgerWriter interface {
	// AppendPosting validates and appends a balanced posting, then applies its
	// entries to the running balances of the chart of accounts. When the journal
	// is stored but the balances are not, the error wraps apperrors.ErrPartialWrite.
	AppendPosting(ctx context.Context, posting domain.JournalPosting) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
