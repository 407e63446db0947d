package pgsql

import (
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/entryquery"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL stores.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:  newPgxEntryRepository(dbPool, domain.KindExpense, entryquery.ExpensesTable),
		IncomeRepo:   newPgxEntryRepository(dbPool, domain.KindIncome, entryquery.IncomesTable),
		CategoryRepo: newPgxCategoryRepository(dbPool),
		Snapshots:    newPgxSnapshotStore(dbPool),
	}
}
