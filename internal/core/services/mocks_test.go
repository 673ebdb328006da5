package services_test

import (
	"context"

	"github.com/SscSPs/pos_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindSale(ctx context.Context, idOrNumber string) (*domain.Sale, error) {
	args := m.Called(ctx, idOrNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter portsrepo.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, idOrNumber string) error {
	return m.Called(ctx, idOrNumber).Error(0)
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) ListClosedShifts(ctx context.Context) ([]domain.ShiftRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShiftRecord), args.Error(1)
}

var _ portsrepo.ShiftReader = (*MockShiftRepository)(nil)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindStockItem(ctx context.Context, itemID string) (*domain.StockItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

func (m *MockStockRepository) IncrementStock(ctx context.Context, itemID string, quantity decimal.Decimal) (*domain.StockItem, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockItem), args.Error(1)
}

var _ portsrepo.StockRepositoryFacade = (*MockStockRepository)(nil)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AppendPosting(ctx context.Context, posting domain.JournalPosting) error {
	return m.Called(ctx, posting).Error(0)
}

var _ portsrepo.LedgerWriter = (*MockLedgerRepository)(nil)
