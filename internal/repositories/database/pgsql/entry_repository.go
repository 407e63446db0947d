package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/entryquery"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEntryRepository stores one ledger kind in its own PostgreSQL table.
type PgxEntryRepository struct {
	BaseRepository
	kind    domain.EntryKind
	queries entryquery.Queries
}

// newPgxEntryRepository creates a repository for the table backing kind.
func newPgxEntryRepository(pool *pgxpool.Pool, kind domain.EntryKind, table entryquery.Table) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
		queries:        entryquery.NewQueries(entryquery.Postgres, table),
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.Entry, error) {
	var m models.Entry
	err := row.Scan(
		&m.ID,
		&m.Amount,
		&m.DateTime,
		&m.Group,
		&m.Description,
		&m.PaymentMethod,
		&m.Receipt,
		&m.Currency,
		&m.IsTrashed,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxEntryRepository) table() string {
	return r.queries.Table.Name
}

// FindEntryByID retrieves a live entry by id.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error) {
	q := r.queries.FindByID(id)
	m, err := scanEntry(r.Pool.QueryRow(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found", r.kind, id))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find "+string(r.kind), err)
	}
	entry := mapping.ToDomainEntry(r.kind, m)
	return &entry, nil
}

// ListEntries retrieves the live entries matching filter, newest first.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	return r.list(ctx, r.queries.List(filter))
}

// ListAllEntries retrieves every live entry, oldest first.
func (r *PgxEntryRepository) ListAllEntries(ctx context.Context) ([]domain.Entry, error) {
	return r.list(ctx, r.queries.ListAll())
}

func (r *PgxEntryRepository) list(ctx context.Context, q entryquery.Query) ([]domain.Entry, error) {
	rows, err := r.Pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list "+r.table(), err)
	}
	defer rows.Close()

	var ms []models.Entry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan "+string(r.kind), err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating "+r.table(), err)
	}
	return mapping.ToDomainEntrySlice(r.kind, ms), nil
}

// CountEntries counts the live entries matching filter.
func (r *PgxEntryRepository) CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error) {
	q := r.queries.Count(filter)
	var n int
	if err := r.Pool.QueryRow(ctx, q.SQL, q.Args...).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to count "+r.table(), err)
	}
	return n, nil
}

// ExistsEntry probes for any live entry matching filter.
func (r *PgxEntryRepository) ExistsEntry(ctx context.Context, filter domain.EntryFilter) (bool, error) {
	q := r.queries.Exists(filter)
	var one int
	err := r.Pool.QueryRow(ctx, q.SQL, q.Args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to probe "+r.table(), err)
	}
	return true, nil
}

// FindNewestDateTime returns the latest dateTime matching filter.
func (r *PgxEntryRepository) FindNewestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	return r.extreme(ctx, r.queries.Newest(filter))
}

// FindOldestDateTime returns the earliest dateTime matching filter.
func (r *PgxEntryRepository) FindOldestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	return r.extreme(ctx, r.queries.Oldest(filter))
}

func (r *PgxEntryRepository) extreme(ctx context.Context, q entryquery.Query) (*time.Time, error) {
	var t time.Time
	err := r.Pool.QueryRow(ctx, q.SQL, q.Args...).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to probe "+r.table()+" dates", err)
	}
	return &t, nil
}

// AggregateEntries computes SUM, COUNT, MAX and MIN over filter.
func (r *PgxEntryRepository) AggregateEntries(ctx context.Context, filter domain.EntryFilter) (domain.EntryAggregate, error) {
	q := r.queries.Aggregate(filter)
	var agg domain.EntryAggregate
	if err := r.Pool.QueryRow(ctx, q.SQL, q.Args...).Scan(&agg.Total, &agg.Count, &agg.Max, &agg.Min); err != nil {
		return domain.EntryAggregate{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to aggregate "+r.table(), err)
	}
	return agg, nil
}

// AggregateEntriesByGroup computes SUM and COUNT per group over filter.
func (r *PgxEntryRepository) AggregateEntriesByGroup(ctx context.Context, filter domain.EntryFilter) ([]domain.GroupStat, error) {
	q := r.queries.AggregateByGroup(filter)
	rows, err := r.Pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to group "+r.table(), err)
	}
	defer rows.Close()

	result := []domain.GroupStat{}
	for rows.Next() {
		var g domain.GroupStat
		if err := rows.Scan(&g.Key, &g.Total, &g.Count); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan group row", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating group rows", err)
	}
	return result, nil
}

// CountEntriesByGroup counts live entries per group.
func (r *PgxEntryRepository) CountEntriesByGroup(ctx context.Context) ([]domain.GroupUsage, error) {
	q := r.queries.CountByGroup()
	rows, err := r.Pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to count "+r.table()+" by group", err)
	}
	defer rows.Close()

	result := []domain.GroupUsage{}
	for rows.Next() {
		var u domain.GroupUsage
		if err := rows.Scan(&u.Key, &u.Count); err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan usage row", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating usage rows", err)
	}
	return result, nil
}

// SaveEntry inserts entry and returns it with the id assigned by the database.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	q := r.queries.Insert(mapping.ToModelEntry(entry))
	if err := r.Pool.QueryRow(ctx, q.SQL, q.Args...).Scan(&entry.ID); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save "+string(r.kind), err)
	}
	entry.Kind = r.kind
	return &entry, nil
}

// UpdateEntry replaces the mutable fields of a live entry.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	q := r.queries.Update(mapping.ToModelEntry(entry))
	return r.execOne(ctx, q, fmt.Sprintf("%s %d not found or already deleted", r.kind, entry.ID), "failed to update "+string(r.kind))
}

// TrashEntry soft-deletes a live entry.
func (r *PgxEntryRepository) TrashEntry(ctx context.Context, id int64, at time.Time) error {
	q := r.queries.Trash(id, at)
	return r.execOne(ctx, q, fmt.Sprintf("%s %d not found or already deleted", r.kind, id), "failed to delete "+string(r.kind))
}

func (r *PgxEntryRepository) execOne(ctx context.Context, q entryquery.Query, notFound, failure string) error {
	cmdTag, err := r.Pool.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, failure, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(notFound)
	}
	return nil
}

// TrashEntriesByGroup soft-deletes every live entry of group.
func (r *PgxEntryRepository) TrashEntriesByGroup(ctx context.Context, group string, at time.Time) (int64, error) {
	q := r.queries.TrashByGroup(group, at)
	cmdTag, err := r.Pool.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete "+r.table()+" of "+group, err)
	}
	return cmdTag.RowsAffected(), nil
}
