package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// IsDebitNormal reports whether debits increase the balance of an account of this type.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}

// Account is one row of the chart of accounts.
type Account struct {
	Code    string          `json:"code"`    // Chart-of-accounts code, e.g. "1-1000"
	Name    string          `json:"name"`    // Display name
	Type    AccountType     `json:"type"`    // asset, liability, etc.
	Balance decimal.Decimal `json:"balance"` // Running balance, maintained by ledger postings
}

// AccountCodes maps the symbolic accounts touched by a sale reversal to
// concrete chart-of-accounts codes.
type AccountCodes struct {
	Cash             string `json:"cash"`
	MemberReceivable string `json:"memberReceivable"`
	Inventory        string `json:"inventory"`
	Revenue          string `json:"revenue"`
	CostOfGoods      string `json:"costOfGoods"`
}

// DefaultAccountCodes returns the codes used by the default chart of accounts.
func DefaultAccountCodes() AccountCodes {
	return AccountCodes{
		Cash:             "1-1000",
		MemberReceivable: "1-1200",
		Inventory:        "1-1300",
		Revenue:          "4-1000",
		CostOfGoods:      "5-1000",
	}
}
