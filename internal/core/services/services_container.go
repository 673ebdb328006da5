package services

import (
	portsrepo "github.com/SscSPs/pos_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_ledger/internal/core/ports/services"
	"github.com/SscSPs/pos_ledger/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Eligibility = NewEligibilityValidator(repos.SaleRepo, repos.ShiftRepo, options...)
	container.StockRestorer = NewStockRestorer(repos.StockRepo, options...)
	container.ReversalPoster = NewReversalPoster(repos.LedgerRepo, cfg.AccountCodes, options...)
	container.Deletion = NewDeletionService(
		container.Eligibility,
		container.StockRestorer,
		container.ReversalPoster,
		repos.SaleRepo,
		repos.AuditRepo,
		options...,
	)

	return container
}
