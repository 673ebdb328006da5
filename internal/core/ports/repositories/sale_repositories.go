package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
)

// SaleFilter narrows ListSales. Zero values mean "any".
type SaleFilter struct {
	CashierID     string
	PaymentMethod domain.PaymentMethod
	From          *time.Time // Inclusive
	To            *time.Time // Inclusive
}

// SaleReader defines read operations for sale data
type SaleReader interface {
	// FindSale retrieves a sale by id or by sale number. Returns apperrors.ErrNotFound when absent.
	FindSale(ctx context.Context, idOrNumber string) (*domain.Sale, error)

	// ListSales returns the sales matching filter, in stored order.
	ListSales(ctx context.Context, filter SaleFilter) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sale data
type SaleWriter interface {
	// SaveSale inserts the sale, or replaces the stored sale with the same id.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// DeleteSale removes the sale matching id or sale number. Returns apperrors.ErrNotFound when absent.
	DeleteSale(ctx context.Context, idOrNumber string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
