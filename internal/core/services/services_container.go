package services

import (
	portsrepo "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/repositories"
	portssvc "github.com/LurkingGoo/cash-flow-sync-pilot/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. Services share the repository provider by
// reference; nothing here is per-request.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Identity = NewIdentityService(repos.AccountRepo, repos.ChatLinkRepo)
	container.Catalog = NewCatalogService(repos.CategoryRepo, repos.CardRepo)
	container.Ledger = NewLedgerService(container.Catalog, repos.LedgerRepo, repos.BudgetRepo)
	container.Summary = NewSummaryService(repos.LedgerRepo, repos.HoldingRepo, repos.BudgetRepo)

	return container
}
