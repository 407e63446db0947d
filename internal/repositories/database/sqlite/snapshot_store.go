package sqlite

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

// SnapshotStore replaces every table of the SQLite database in one transaction.
type SnapshotStore struct {
	db         *sql.DB
	expenses   *EntryRepository
	incomes    *EntryRepository
	categories *CategoryRepository
}

var _ portsrepo.SnapshotStore = (*SnapshotStore)(nil)

// ReplaceSnapshot swaps the stored ledgers and taxonomies for snap.
func (s *SnapshotStore) ReplaceSnapshot(ctx context.Context, snap domain.Snapshot) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin restore", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.expenses.replaceTx(ctx, tx, snap.Expenses); err != nil {
		return err
	}
	if err = s.incomes.replaceTx(ctx, tx, snap.Incomes); err != nil {
		return err
	}
	if err = s.categories.replaceTx(ctx, tx, snap.Categories); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit restore", err)
	}
	return nil
}
