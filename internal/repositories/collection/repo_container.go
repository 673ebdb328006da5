package collection

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every collection-backed repository to one store.
func NewRepositoryProvider(store portsrepo.CollectionStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SaleRepo:   NewSaleRepository(store),
		StockRepo:  NewStockRepository(store),
		LedgerRepo: NewLedgerRepository(store),
		AuditRepo:  NewAuditRepository(store),
		ShiftRepo:  NewShiftRepository(store),
	}
}
