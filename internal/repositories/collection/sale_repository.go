package collection

import (
	"context"
	"fmt"

	"github.com/SscSPs/pos_ledger/internal/apperrors"
	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

type SaleRepository struct {
	BaseRepository[domain.Sale]
}

// NewSaleRepository creates a repository over the "sales" collection.
func NewSaleRepository(store portsrepo.CollectionStore) *SaleRepository {
	return &SaleRepository{BaseRepository[domain.Sale]{Store: store, Key: domain.CollectionSales}}
}

// Ensure SaleRepository implements portsrepo.SaleRepositoryFacade
var _ portsrepo.SaleRepositoryFacade = (*SaleRepository)(nil)

func (r *SaleRepository) FindSale(ctx context.Context, idOrNumber string) (*domain.Sale, error) {
	sales, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOfSale(sales, idOrNumber); i >= 0 {
		return sales[i].Clone(), nil
	}
	return nil, fmt.Errorf("sale %s: %w", idOrNumber, apperrors.ErrNotFound)
}

func (r *SaleRepository) ListSales(ctx context.Context, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	sales, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Sale, 0, len(sales))
	for _, s := range sales {
		if filter.CashierID != "" && s.CashierID != filter.CashierID {
			continue
		}
		if filter.PaymentMethod != "" && s.PaymentMethod != filter.PaymentMethod {
			continue
		}
		if filter.From != nil && s.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && s.Date.After(*filter.To) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *SaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	if sale.ID == "" {
		return fmt.Errorf("%w: sale id is required", apperrors.ErrValidation)
	}
	sales, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range sales {
		if sales[i].ID == sale.ID {
			sales[i] = sale
			replaced = true
			break
		}
	}
	if !replaced {
		sales = append(sales, sale)
	}
	return r.save(ctx, sales)
}

func (r *SaleRepository) DeleteSale(ctx context.Context, idOrNumber string) error {
	sales, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOfSale(sales, idOrNumber)
	if i < 0 {
		return fmt.Errorf("sale %s: %w", idOrNumber, apperrors.ErrNotFound)
	}
	sales = append(sales[:i], sales[i+1:]...)
	return r.save(ctx, sales)
}

func indexOfSale(sales []domain.Sale, idOrNumber string) int {
	for i := range sales {
		if sales[i].MatchesKey(idOrNumber) {
			return i
		}
	}
	return -1
}
