package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
)

type stockRestorer struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockRestorer creates the service that puts sold quantities back on hand.
func NewStockRestorer(stockRepo portsrepo.StockRepositoryFacade, options ...ServiceOption) portssvc.StockRestorerSvc {
	svc := &stockRestorer{
		BaseService: newBaseService(),
		stockRepo:   stockRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.StockRestorerSvc = (*stockRestorer)(nil)

// Restore applies one increment per line item, in order, so repeated item ids
// accumulate. It stops at the first storage failure; increments already
// applied stay applied.
func (s *stockRestorer) Restore(ctx context.Context, items []domain.LineItem) (*domain.RestoreResult, error) {
	result := &domain.RestoreResult{Warnings: []string{}}

	for _, item := range items {
		updated, err := s.stockRepo.IncrementStock(ctx, item.ItemID, item.Quantity)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				warning := fmt.Sprintf("Item %s (%s) was not found in stock; its quantity could not be restored", item.Name, item.ItemID)
				s.LogWarn(ctx, "Stock item missing during restore", slog.String("item_id", item.ItemID))
				result.Warnings = append(result.Warnings, warning)
				continue
			}
			s.LogError(ctx, err, "Failed to restore stock", slog.String("item_id", item.ItemID))
			return result, fmt.Errorf("failed to restore stock for item %s: %w", item.ItemID, err)
		}

		result.RestoredItems++
		s.LogDebug(ctx, "Stock restored",
			slog.String("item_id", item.ItemID),
			slog.String("quantity", item.Quantity.String()),
			slog.String("on_hand", updated.QuantityOnHand.String()))
	}
	return result, nil
}
