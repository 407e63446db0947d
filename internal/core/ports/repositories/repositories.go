package repositories

import "github.com/SscSPs/pocket_ledger/internal/core/domain"

// RepositoryProvider holds the stores needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ExpenseRepo  EntryRepositoryFacade
	IncomeRepo   EntryRepositoryFacade
	CategoryRepo CategoryRepositoryFacade
	Snapshots    SnapshotStore
}

// For returns the store of kind, nil for unknown kinds.
func (p RepositoryProvider) For(kind domain.EntryKind) EntryRepositoryFacade {
	switch kind {
	case domain.KindExpense:
		return p.ExpenseRepo
	case domain.KindIncome:
		return p.IncomeRepo
	}
	return nil
}
