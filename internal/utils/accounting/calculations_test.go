package accounting

import (
	"testing"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEntry_SignConvention(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	tests := []struct {
		name        string
		accountType domain.AccountType
		entry       domain.Entry
		want        int64
	}{
		{"debit asset increases", domain.Asset, domain.Entry{Debit: hundred}, 1100},
		{"credit asset decreases", domain.Asset, domain.Entry{Credit: hundred}, 900},
		{"debit expense increases", domain.Expense, domain.Entry{Debit: hundred}, 1100},
		{"credit expense decreases", domain.Expense, domain.Entry{Credit: hundred}, 900},
		{"debit revenue decreases", domain.Revenue, domain.Entry{Debit: hundred}, 900},
		{"credit revenue increases", domain.Revenue, domain.Entry{Credit: hundred}, 1100},
		{"debit liability decreases", domain.Liability, domain.Entry{Debit: hundred}, 900},
		{"credit equity increases", domain.Equity, domain.Entry{Credit: hundred}, 1100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := domain.Account{Code: "X", Type: tt.accountType, Balance: decimal.NewFromInt(1000)}
			got, err := ApplyEntry(account, tt.entry)
			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestApplyEntry_UnknownType(t *testing.T) {
	account := domain.Account{Code: "X", Type: "mystery", Balance: decimal.NewFromInt(5)}
	got, err := ApplyEntry(account, domain.Entry{AccountCode: "X", Debit: decimal.NewFromInt(1)})
	assert.Error(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "balance must be unchanged on error")
}

func TestValidatePostingBalance(t *testing.T) {
	ok := domain.JournalPosting{Entries: []domain.Entry{
		{AccountCode: "4-1000", Debit: decimal.NewFromInt(150000)},
		{AccountCode: "1-1000", Credit: decimal.NewFromInt(150000)},
	}}
	assert.NoError(t, ValidatePostingBalance(ok))

	single := domain.JournalPosting{Entries: ok.Entries[:1]}
	assert.ErrorIs(t, ValidatePostingBalance(single), ErrPostingMinEntries)

	unbalanced := domain.JournalPosting{Entries: []domain.Entry{
		{AccountCode: "4-1000", Debit: decimal.NewFromInt(10)},
		{AccountCode: "1-1000", Credit: decimal.NewFromInt(9)},
	}}
	assert.ErrorIs(t, ValidatePostingBalance(unbalanced), ErrPostingUnbalanced)

	negative := domain.JournalPosting{Entries: []domain.Entry{
		{AccountCode: "4-1000", Debit: decimal.NewFromInt(-10)},
		{AccountCode: "1-1000", Credit: decimal.NewFromInt(-10)},
	}}
	assert.Error(t, ValidatePostingBalance(negative))
}
