package accounting

import (
	"errors"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrPostingMinEntries = errors.New("journal posting must have at least two entries")
	ErrPostingUnbalanced = errors.New("journal posting does not balance")
)

// SignedAmount returns the change an entry makes to the balance of an account of the given type.
// This is used by the ledger repository and by tests to keep the sign convention in one place.
func SignedAmount(entry domain.Entry, accountType domain.AccountType) (decimal.Decimal, error) {
	// DEBIT to ASSET/EXPENSE -> Positive (+), CREDIT -> Negative (-)
	// CREDIT to LIABILITY/EQUITY/REVENUE -> Positive (+), DEBIT -> Negative (-)
	if !accountType.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown account type '%s' encountered for account %s", accountType, entry.AccountCode)
	}
	if accountType.IsDebitNormal() {
		return entry.Debit.Sub(entry.Credit), nil
	}
	return entry.Credit.Sub(entry.Debit), nil
}

// ApplyEntry returns the balance of account after entry is posted to it.
func ApplyEntry(account domain.Account, entry domain.Entry) (decimal.Decimal, error) {
	signed, err := SignedAmount(entry, account.Type)
	if err != nil {
		return account.Balance, err
	}
	return account.Balance.Add(signed), nil
}

// ValidatePostingBalance checks that the posting has at least two entries, no
// negative amounts, and equal debit and credit totals.
func ValidatePostingBalance(posting domain.JournalPosting) error {
	if len(posting.Entries) < 2 {
		return ErrPostingMinEntries
	}

	for _, e := range posting.Entries {
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("entry amounts must not be negative for account %s", e.AccountCode)
		}
	}

	debit, credit := posting.Totals()
	if !debit.Equal(credit) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", ErrPostingUnbalanced, debit.String(), credit.String())
	}
	return nil
}
