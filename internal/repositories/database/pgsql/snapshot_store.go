package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/entryquery"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSnapshotStore replaces every ledger table in one PostgreSQL transaction.
type PgxSnapshotStore struct {
	BaseRepository
	expenses   entryquery.Queries
	incomes    entryquery.Queries
	categories entryquery.CategoryQueries
}

// newPgxSnapshotStore creates the restore store on pool.
func newPgxSnapshotStore(pool *pgxpool.Pool) *PgxSnapshotStore {
	return &PgxSnapshotStore{
		BaseRepository: BaseRepository{Pool: pool},
		expenses:       entryquery.NewQueries(entryquery.Postgres, entryquery.ExpensesTable),
		incomes:        entryquery.NewQueries(entryquery.Postgres, entryquery.IncomesTable),
		categories:     entryquery.NewCategoryQueries(entryquery.Postgres),
	}
}

var (
	_ portsrepo.SnapshotStore      = (*PgxSnapshotStore)(nil)
	_ portsrepo.TransactionManager = (*PgxSnapshotStore)(nil)
)

// ReplaceSnapshot clears expenses, incomes and categories and inserts the
// rows of snap as one batch inside one transaction.
func (s *PgxSnapshotStore) ReplaceSnapshot(ctx context.Context, snap domain.Snapshot) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Rollback(ctx, tx) }()

	batch := &pgx.Batch{}
	batch.Queue(s.expenses.DeleteAll().SQL)
	batch.Queue(s.incomes.DeleteAll().SQL)
	batch.Queue(s.categories.DeleteAll().SQL)
	for _, e := range snap.Expenses {
		q := s.expenses.Insert(mapping.ToModelEntry(e))
		batch.Queue(q.SQL, q.Args...)
	}
	for _, e := range snap.Incomes {
		q := s.incomes.Insert(mapping.ToModelEntry(e))
		batch.Queue(q.SQL, q.Args...)
	}
	for _, c := range snap.Categories {
		q := s.categories.InsertIfMissing(mapping.ToModelCategory(c))
		batch.Queue(q.SQL, q.Args...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to restore snapshot", err)
	}
	return s.Commit(ctx, tx)
}
