package repositories

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockRepositoryFacade reads and increments quantity on hand per item.
type StockRepositoryFacade interface {
	// FindStockItem returns apperrors.ErrNotFound when the item is not stocked.
	FindStockItem(ctx context.Context, itemID string) (*domain.StockItem, error)

	// IncrementStock adds quantity to the item and returns the updated item.
	// Returns apperrors.ErrNotFound when the item is not stocked.
	IncrementStock(ctx context.Context, itemID string, quantity decimal.Decimal) (*domain.StockItem, error)
}
