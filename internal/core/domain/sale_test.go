package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSale_TotalCost(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.LineItem
		want  decimal.Decimal
	}{
		{
			name:  "no items",
			items: nil,
			want:  decimal.Zero,
		},
		{
			name: "zero cost basis",
			items: []domain.LineItem{
				{ItemID: "I1", UnitCost: decimal.Zero, Quantity: decimal.NewFromInt(3)},
			},
			want: decimal.Zero,
		},
		{
			name: "several lines",
			items: []domain.LineItem{
				{ItemID: "I1", UnitCost: decimal.NewFromInt(15000), Quantity: decimal.NewFromInt(2)},
				{ItemID: "I2", UnitCost: decimal.NewFromInt(5000), Quantity: decimal.NewFromInt(3)},
			},
			want: decimal.NewFromInt(45000),
		},
		{
			name: "fractional quantity",
			items: []domain.LineItem{
				{ItemID: "I1", UnitCost: decimal.NewFromInt(12000), Quantity: decimal.RequireFromString("0.5")},
			},
			want: decimal.NewFromInt(6000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := &domain.Sale{LineItems: tt.items}
			assert.True(t, tt.want.Equal(sale.TotalCost()), "got %s, want %s", sale.TotalCost(), tt.want)
		})
	}
}

func TestSale_MatchesKey(t *testing.T) {
	sale := &domain.Sale{ID: "S1", SaleNumber: "TRX-001"}

	assert.True(t, sale.MatchesKey("S1"))
	assert.True(t, sale.MatchesKey("TRX-001"))
	assert.False(t, sale.MatchesKey("S2"))
	assert.False(t, sale.MatchesKey(""))
}

func TestSale_CloneIsDeep(t *testing.T) {
	memberID := "M1"
	original := &domain.Sale{
		ID:       "S1",
		MemberID: &memberID,
		LineItems: []domain.LineItem{
			{ItemID: "I1", Quantity: decimal.NewFromInt(2)},
		},
		Date: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	clone := original.Clone()
	assert.Equal(t, original, clone)

	clone.LineItems[0].Quantity = decimal.NewFromInt(99)
	*clone.MemberID = "M2"

	assert.True(t, original.LineItems[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, "M1", *original.MemberID)
}

func TestShiftRecord_LocksSaleAt(t *testing.T) {
	opened := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	closed := time.Date(2024, 3, 1, 16, 0, 0, 0, time.UTC)
	shift := domain.ShiftRecord{ID: "SH1", OpenedAt: opened, ClosedAt: closed, Status: domain.ShiftClosed}

	assert.True(t, shift.LocksSaleAt(opened), "opening bound is inclusive")
	assert.True(t, shift.LocksSaleAt(closed), "closing bound is inclusive")
	assert.True(t, shift.LocksSaleAt(opened.Add(time.Hour)))
	assert.False(t, shift.LocksSaleAt(opened.Add(-time.Nanosecond)))
	assert.False(t, shift.LocksSaleAt(closed.Add(time.Nanosecond)))

	shift.Status = domain.ShiftOpen
	assert.False(t, shift.LocksSaleAt(opened.Add(time.Hour)), "open shifts never lock")
}

func TestJournalPosting_IsBalanced(t *testing.T) {
	balanced := domain.JournalPosting{Entries: []domain.Entry{
		{AccountCode: "4-1000", Debit: decimal.NewFromInt(100)},
		{AccountCode: "1-1000", Credit: decimal.NewFromInt(100)},
	}}
	unbalanced := domain.JournalPosting{Entries: []domain.Entry{
		{AccountCode: "4-1000", Debit: decimal.NewFromInt(100)},
		{AccountCode: "1-1000", Credit: decimal.NewFromInt(90)},
	}}

	assert.True(t, balanced.IsBalanced())
	assert.False(t, unbalanced.IsBalanced())
}

func TestAccountType_IsDebitNormal(t *testing.T) {
	assert.True(t, domain.Asset.IsDebitNormal())
	assert.True(t, domain.Expense.IsDebitNormal())
	assert.False(t, domain.Liability.IsDebitNormal())
	assert.False(t, domain.Equity.IsDebitNormal())
	assert.False(t, domain.Revenue.IsDebitNormal())
	assert.False(t, domain.AccountType("bogus").IsValid())
}
