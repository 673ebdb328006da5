package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reversalPoster struct {
	BaseService
	ledgerRepo portsrepo.LedgerWriter
	codes      domain.AccountCodes
}

// NewReversalPoster creates the service that posts the journal entries undoing a sale.
func NewReversalPoster(ledgerRepo portsrepo.LedgerWriter, codes domain.AccountCodes, options ...ServiceOption) portssvc.ReversalPosterSvc {
	svc := &reversalPoster{
		BaseService: newBaseService(),
		ledgerRepo:  ledgerRepo,
		codes:       codes,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ReversalPosterSvc = (*reversalPoster)(nil)

// Post appends the revenue reversal first. The cost reversal is only posted
// when the sale carried a positive cost of goods.
func (s *reversalPoster) Post(ctx context.Context, sale domain.Sale, actor string) (*domain.ReversalResult, error) {
	result := &domain.ReversalResult{PostedJournalIDs: []string{}}
	now := s.Now()

	creditAccount := s.codes.Cash
	if sale.PaymentMethod == domain.PaymentCredit {
		creditAccount = s.codes.MemberReceivable
	}

	revenue := domain.JournalPosting{
		ID:          s.NewID(),
		Date:        now,
		Description: fmt.Sprintf("Sale deletion reversal - %s", sale.SaleNumber),
		Reference:   sale.SaleNumber,
		Entries: []domain.Entry{
			{AccountCode: s.codes.Revenue, Debit: sale.Total, Credit: decimal.Zero},
			{AccountCode: creditAccount, Debit: decimal.Zero, Credit: sale.Total},
		},
		CreatedBy: actor,
	}
	if err := s.ledgerRepo.AppendPosting(ctx, revenue); err != nil {
		s.LogError(ctx, err, "Failed to post revenue reversal", slog.String("sale_id", sale.ID))
		return result, fmt.Errorf("failed to post revenue reversal for sale %s: %w", sale.SaleNumber, err)
	}
	result.PostedJournalIDs = append(result.PostedJournalIDs, revenue.ID)

	totalCost := sale.TotalCost()
	if !totalCost.IsPositive() {
		return result, nil
	}

	cost := domain.JournalPosting{
		ID:          s.NewID(),
		Date:        now,
		Description: fmt.Sprintf("HPP (cost of goods) reversal - %s", sale.SaleNumber),
		Reference:   sale.SaleNumber,
		Entries: []domain.Entry{
			{AccountCode: s.codes.Inventory, Debit: totalCost, Credit: decimal.Zero},
			{AccountCode: s.codes.CostOfGoods, Debit: decimal.Zero, Credit: totalCost},
		},
		CreatedBy: actor,
	}
	if err := s.ledgerRepo.AppendPosting(ctx, cost); err != nil {
		s.LogError(ctx, err, "Failed to post cost reversal", slog.String("sale_id", sale.ID))
		return result, fmt.Errorf("failed to post cost reversal for sale %s: %w", sale.SaleNumber, err)
	}
	result.PostedJournalIDs = append(result.PostedJournalIDs, cost.ID)
	return result, nil
}
