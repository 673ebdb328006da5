package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReversalPosterTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerRepository
	poster     portssvc.ReversalPosterSvc
	codes      domain.AccountCodes
	now        time.Time
	posted     []domain.JournalPosting
}

func (suite *ReversalPosterTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.codes = domain.DefaultAccountCodes()
	suite.now = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	suite.posted = nil
	seq := 0
	suite.poster = services.NewReversalPoster(suite.mockLedger, suite.codes,
		services.WithClock(func() time.Time { return suite.now }),
		services.WithIDGenerator(func() string { seq++; return fmt.Sprintf("J%d", seq) }),
	)
}

func (suite *ReversalPosterTestSuite) capture() {
	suite.mockLedger.On("AppendPosting", mock.Anything, mock.AnythingOfType("domain.JournalPosting")).
		Run(func(args mock.Arguments) {
			suite.posted = append(suite.posted, args.Get(1).(domain.JournalPosting))
		}).Return(nil)
}

func sampleSale(method domain.PaymentMethod, total int64, unitCost int64, qty int64) domain.Sale {
	return domain.Sale{
		ID:            "S1",
		SaleNumber:    "INV-001",
		PaymentMethod: method,
		Total:         decimal.NewFromInt(total),
		LineItems: []domain.LineItem{
			{ItemID: "I1", Name: "Rice", UnitCost: decimal.NewFromInt(unitCost), Quantity: decimal.NewFromInt(qty)},
		},
	}
}

func (suite *ReversalPosterTestSuite) assertEntry(e domain.Entry, code string, debit, credit int64) {
	suite.Equal(code, e.AccountCode)
	suite.True(e.Debit.Equal(decimal.NewFromInt(debit)), "debit %s", e.Debit)
	suite.True(e.Credit.Equal(decimal.NewFromInt(credit)), "credit %s", e.Credit)
}

func (suite *ReversalPosterTestSuite) TestPost_CashSale() {
	suite.capture()

	result, err := suite.poster.Post(context.Background(), sampleSale(domain.PaymentCash, 150000, 0, 3), "admin")

	suite.Require().NoError(err)
	suite.Equal([]string{"J1"}, result.PostedJournalIDs)
	suite.Require().Len(suite.posted, 1)
	p := suite.posted[0]
	suite.True(p.IsBalanced())
	suite.Equal(suite.now, p.Date)
	suite.Equal("admin", p.CreatedBy)
	suite.Contains(p.Description, "reversal")
	suite.Contains(p.Description, "INV-001")
	suite.assertEntry(p.Entries[0], suite.codes.Revenue, 150000, 0)
	suite.assertEntry(p.Entries[1], suite.codes.Cash, 0, 150000)
}

func (suite *ReversalPosterTestSuite) TestPost_CreditSale() {
	suite.capture()

	_, err := suite.poster.Post(context.Background(), sampleSale(domain.PaymentCredit, 200000, 0, 1), "admin")

	suite.Require().NoError(err)
	suite.Require().Len(suite.posted, 1)
	suite.assertEntry(suite.posted[0].Entries[0], suite.codes.Revenue, 200000, 0)
	suite.assertEntry(suite.posted[0].Entries[1], suite.codes.MemberReceivable, 0, 200000)
}

func (suite *ReversalPosterTestSuite) TestPost_CostReversal() {
	suite.capture()

	result, err := suite.poster.Post(context.Background(), sampleSale(domain.PaymentCash, 100000, 15000, 3), "admin")

	suite.Require().NoError(err)
	suite.Equal([]string{"J1", "J2"}, result.PostedJournalIDs)
	suite.Require().Len(suite.posted, 2)
	cost := suite.posted[1]
	suite.True(cost.IsBalanced())
	suite.Contains(cost.Description, "HPP")
	suite.Contains(cost.Description, "INV-001")
	suite.assertEntry(cost.Entries[0], suite.codes.Inventory, 45000, 0)
	suite.assertEntry(cost.Entries[1], suite.codes.CostOfGoods, 0, 45000)
}

func (suite *ReversalPosterTestSuite) TestPost_ZeroCostSkipsCostReversal() {
	suite.capture()

	result, err := suite.poster.Post(context.Background(), sampleSale(domain.PaymentCash, 100000, 0, 5), "admin")

	suite.Require().NoError(err)
	suite.Len(result.PostedJournalIDs, 1)
	suite.Len(suite.posted, 1)
}

func (suite *ReversalPosterTestSuite) TestPost_StorageFailure() {
	suite.mockLedger.On("AppendPosting", mock.Anything, mock.Anything).Return(apperrors.ErrStorageWrite).Once()

	result, err := suite.poster.Post(context.Background(), sampleSale(domain.PaymentCash, 100000, 15000, 3), "admin")

	suite.ErrorIs(err, apperrors.ErrStorageWrite)
	suite.Empty(result.PostedJournalIDs)
	suite.mockLedger.AssertNumberOfCalls(suite.T(), "AppendPosting", 1)
}

func TestReversalPoster(t *testing.T) {
	suite.Run(t, new(ReversalPosterTestSuite))
}
