package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AccountRepo  AccountReader
	ChatLinkRepo ChatLinkRepositoryFacade
	CategoryRepo CategoryReader
	CardRepo     CardReader
	LedgerRepo   LedgerRepositoryFacade
	HoldingRepo  HoldingReader
	BudgetRepo   BudgetRepositoryFacade
}
