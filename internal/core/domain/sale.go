package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod indicates how a sale was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit" // "bon": charged to the member's receivable
)

// MemberType distinguishes registered members from walk-in customers.
type MemberType string

const (
	MemberTypeMember MemberType = "member"
	MemberTypeGuest  MemberType = "guest"
)

// LineItem is one product line of a sale. It is immutable once the sale exists.
type LineItem struct {
	ItemID        string          `json:"itemId"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	UnitCost      decimal.Decimal `json:"unitCost"` // Historical cost basis (HPP)
	Quantity      decimal.Decimal `json:"quantity"`
	StockSnapshot decimal.Decimal `json:"stockSnapshot"` // Informational only
}

// Cost returns unitCost * quantity.
func (li LineItem) Cost() decimal.Decimal {
	return li.UnitCost.Mul(li.Quantity)
}

// Sale is one recorded point-of-sale checkout.
type Sale struct {
	ID            string          `json:"id"`
	SaleNumber    string          `json:"saleNumber"` // Alternate external key
	Date          time.Time       `json:"date"`
	CashierID     string          `json:"cashierId"`
	MemberID      *string         `json:"memberId,omitempty"`
	MemberType    MemberType      `json:"memberType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	LineItems     []LineItem      `json:"lineItems"`
	Total         decimal.Decimal `json:"total"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
	Change        decimal.Decimal `json:"change"`
	Status        string          `json:"status"`
}

// MatchesKey reports whether key is the sale's id or its sale number.
func (s *Sale) MatchesKey(key string) bool {
	return key != "" && (s.ID == key || s.SaleNumber == key)
}

// TotalCost returns the cost of goods sold: the sum of unitCost * quantity over all line items.
func (s *Sale) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, li := range s.LineItems {
		total = total.Add(li.Cost())
	}
	return total
}

// Clone returns a deep copy of the sale.
func (s *Sale) Clone() *Sale {
	if s == nil {
		return nil
	}
	c := *s
	if s.MemberID != nil {
		memberID := *s.MemberID
		c.MemberID = &memberID
	}
	if s.LineItems != nil {
		c.LineItems = make([]LineItem, len(s.LineItems))
		copy(c.LineItems, s.LineItems)
	}
	return &c
}
