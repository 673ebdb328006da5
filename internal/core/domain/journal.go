package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single debit/credit line of a journal posting, affecting one account.
type Entry struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalPosting represents a single, balanced financial event.
type JournalPosting struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Reference   string    `json:"reference,omitempty"` // External document number, e.g. the sale number
	Entries     []Entry   `json:"entries"`
	CreatedBy   string    `json:"createdBy,omitempty"`
}

// Totals returns the sum of debits and the sum of credits of the posting.
func (p JournalPosting) Totals() (debit decimal.Decimal, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range p.Entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// IsBalanced reports whether total debits equal total credits.
func (p JournalPosting) IsBalanced() bool {
	debit, credit := p.Totals()
	return debit.Equal(credit)
}
