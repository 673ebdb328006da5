package collection

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pos_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// LedgerRepository keeps the journal and the chart of accounts, two separate
// collections that are written one after the other.
type LedgerRepository struct {
	journal  BaseRepository[domain.JournalPosting]
	accounts BaseRepository[domain.Account]
}

// NewLedgerRepository creates a repository over the "journal" and "chartOfAccounts" collections.
func NewLedgerRepository(store portsrepo.CollectionStore) *LedgerRepository {
	return &LedgerRepository{
		journal:  BaseRepository[domain.JournalPosting]{Store: store, Key: domain.CollectionJournal},
		accounts: BaseRepository[domain.Account]{Store: store, Key: domain.CollectionChartOfAccounts},
	}
}

// Ensure LedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) ListPostings(ctx context.Context) ([]domain.JournalPosting, error) {
	return r.journal.load(ctx)
}

func (r *LedgerRepository) FindAccount(ctx context.Context, code string) (*domain.Account, error) {
	accounts, err := r.accounts.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Code == code {
			account := a
			return &account, nil
		}
	}
	return nil, fmt.Errorf("account %s: %w", code, apperrors.ErrNotFound)
}

// AppendPosting validates the posting and computes every new balance before
// writing anything. Every account referenced by the posting must exist.
func (r *LedgerRepository) AppendPosting(ctx context.Context, posting domain.JournalPosting) error {
	if posting.ID == "" {
		return fmt.Errorf("%w: journal posting id is required", apperrors.ErrValidation)
	}
	if err := accounting.ValidatePostingBalance(posting); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	accounts, err := r.accounts.load(ctx)
	if err != nil {
		return err
	}
	index := make(map[string]int, len(accounts))
	for i, a := range accounts {
		index[a.Code] = i
	}

	balances := make(map[int]decimal.Decimal, len(posting.Entries))
	for _, e := range posting.Entries {
		i, ok := index[e.AccountCode]
		if !ok {
			return fmt.Errorf("account %s referenced by posting %s: %w", e.AccountCode, posting.ID, apperrors.ErrNotFound)
		}
		current := accounts[i]
		if b, seen := balances[i]; seen {
			current.Balance = b
		}
		next, err := accounting.ApplyEntry(current, e)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		balances[i] = next
	}

	postings, err := r.journal.load(ctx)
	if err != nil {
		return err
	}
	postings = append(postings, posting)
	if err := r.journal.save(ctx, postings); err != nil {
		return fmt.Errorf("failed to append posting %s: %w", posting.ID, err)
	}

	for i, b := range balances {
		accounts[i].Balance = b
	}
	if err := r.accounts.save(ctx, accounts); err != nil {
		return fmt.Errorf("posting %s appended but account balances not updated: %w: %w", posting.ID, apperrors.ErrPartialWrite, err)
	}
	return nil
}
