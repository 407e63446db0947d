package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by stores that group several statements
// into one PostgreSQL transaction, such as a bulk restore.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction; it is a no-op after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
