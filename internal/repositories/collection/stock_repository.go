package collection

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type StockRepository struct {
	BaseRepository[domain.StockItem]
}

// NewStockRepository creates a repository over the "stock" collection.
func NewStockRepository(store portsrepo.CollectionStore) *StockRepository {
	return &StockRepository{BaseRepository[domain.StockItem]{Store: store, Key: domain.CollectionStock}}
}

// Ensure StockRepository implements portsrepo.StockRepositoryFacade
var _ portsrepo.StockRepositoryFacade = (*StockRepository)(nil)

func (r *StockRepository) FindStockItem(ctx context.Context, itemID string) (*domain.StockItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ItemID == itemID {
			item := it
			return &item, nil
		}
	}
	return nil, fmt.Errorf("stock item %s: %w", itemID, apperrors.ErrNotFound)
}

func (r *StockRepository) IncrementStock(ctx context.Context, itemID string, quantity decimal.Decimal) (*domain.StockItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ItemID != itemID {
			continue
		}
		items[i].QuantityOnHand = items[i].QuantityOnHand.Add(quantity)
		if err := r.save(ctx, items); err != nil {
			return nil, err
		}
		updated := items[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("stock item %s: %w", itemID, apperrors.ErrNotFound)
}
