package sqlite

import (
	"context"
	"database/sql"
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
)

// EntryRepository stores one ledger kind in an SQLite table.
type EntryRepository struct {
	db      *sql.DB
	kind    domain.EntryKind
	queries entryquery.Queries
	loc     *time.Location
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// NewEntryRepository returns the store for kind. Instants read back are
// expressed in loc.
func NewEntryRepository(db *sql.DB, kind domain.EntryKind, table entryquery.Table, loc *time.Location) *EntryRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &EntryRepository{
		db:      db,
		kind:    kind,
		queries: entryquery.NewQueries(entryquery.SQLite, table),
		loc:     loc,
	}
}

// NewRepositoryProvider wires every SQLite store onto db.
func NewRepositoryProvider(db *sql.DB, loc *time.Location) portsrepo.RepositoryProvider {
	expenses := NewEntryRepository(db, domain.KindExpense, entryquery.ExpensesTable, loc)
	incomes := NewEntryRepository(db, domain.KindIncome, entryquery.IncomesTable, loc)
	categories := NewCategoryRepository(db, loc)
	return portsrepo.RepositoryProvider{
		ExpenseRepo:  expenses,
		IncomeRepo:   incomes,
		CategoryRepo: categories,
		Snapshots:    &SnapshotStore{db: db, expenses: expenses, incomes: incomes, categories: categories},
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *EntryRepository) fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).In(r.loc)
}

func (r *EntryRepository) scanEntry(row scanner) (models.Entry, error) {
	var (
		m                                     models.Entry
		amount, dateTime, createdAt, updateAt int64
	)
	err := row.Scan(
		&m.ID,
		&amount,
		&dateTime,
		&m.Group,
		&m.Description,
		&m.PaymentMethod,
		&m.Receipt,
		&m.Currency,
		&m.IsTrashed,
		&createdAt,
		&updateAt,
	)
	if err != nil {
		return models.Entry{}, err
	}
	m.Amount = mapping.FromMinorUnits(amount)
	m.DateTime = r.fromMillis(dateTime)
	m.CreatedAt = r.fromMillis(createdAt)
	m.UpdatedAt = r.fromMillis(updateAt)
	return m, nil
}

func (r *EntryRepository) internal(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg+" "+r.queries.Table.Name, err)
}

// FindEntryByID retrieves a live entry by id.
func (r *EntryRepository) FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error) {
	q := r.queries.FindByID(id)
	m, err := r.scanEntry(r.db.QueryRowContext(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found", r.kind, id))
		}
		return nil, r.internal("failed to read", err)
	}
	entry := mapping.ToDomainEntry(r.kind, m)
	return &entry, nil
}

// ListEntries retrieves the live entries matching filter, newest first.
func (r *EntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	return r.list(ctx, r.queries.List(filter))
}

// ListAllEntries retrieves every live entry, oldest first.
func (r *EntryRepository) ListAllEntries(ctx context.Context) ([]domain.Entry, error) {
	return r.list(ctx, r.queries.ListAll())
}

func (r *EntryRepository) list(ctx context.Context, q entryquery.Query) ([]domain.Entry, error) {
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, r.internal("failed to list", err)
	}
	defer rows.Close()

	var ms []models.Entry
	for rows.Next() {
		m, err := r.scanEntry(rows)
		if err != nil {
			return nil, r.internal("failed to scan", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.internal("error iterating", err)
	}
	return mapping.ToDomainEntrySlice(r.kind, ms), nil
}

// CountEntries counts the live entries matching filter.
func (r *EntryRepository) CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error) {
	q := r.queries.Count(filter)
	var n int
	if err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&n); err != nil {
		return 0, r.internal("failed to count", err)
	}
	return n, nil
}

// ExistsEntry probes for any live entry matching filter.
func (r *EntryRepository) ExistsEntry(ctx context.Context, filter domain.EntryFilter) (bool, error) {
	q := r.queries.Exists(filter)
	var one int
	err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, r.internal("failed to probe", err)
	}
	return true, nil
}

// FindNewestDateTime returns the latest dateTime matching filter.
func (r *EntryRepository) FindNewestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	return r.extreme(ctx, r.queries.Newest(filter))
}

// FindOldestDateTime returns the earliest dateTime matching filter.
func (r *EntryRepository) FindOldestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error) {
	return r.extreme(ctx, r.queries.Oldest(filter))
}

func (r *EntryRepository) extreme(ctx context.Context, q entryquery.Query) (*time.Time, error) {
	var ms int64
	err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.internal("failed to probe dates of", err)
	}
	t := r.fromMillis(ms)
	return &t, nil
}

// AggregateEntries computes SUM, COUNT, MAX and MIN over filter.
func (r *EntryRepository) AggregateEntries(ctx context.Context, filter domain.EntryFilter) (domain.EntryAggregate, error) {
	q := r.queries.Aggregate(filter)
	var (
		agg                      domain.EntryAggregate
		total, largest, smallest int64
	)
	if err := r.db.QueryRowContext(ctx, q.SQL, q.Args...).Scan(&total, &agg.Count, &largest, &smallest); err != nil {
		return domain.EntryAggregate{}, r.internal("failed to aggregate", err)
	}
	agg.Total = mapping.FromMinorUnits(total)
	agg.Max = mapping.FromMinorUnits(largest)
	agg.Min = mapping.FromMinorUnits(smallest)
	return agg, nil
}

// AggregateEntriesByGroup computes SUM and COUNT per group over filter.
func (r *EntryRepository) AggregateEntriesByGroup(ctx context.Context, filter domain.EntryFilter) ([]domain.GroupStat, error) {
	q := r.queries.AggregateByGroup(filter)
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, r.internal("failed to group", err)
	}
	defer rows.Close()

	result := []domain.GroupStat{}
	for rows.Next() {
		var (
			g     domain.GroupStat
			total int64
		)
		if err := rows.Scan(&g.Key, &total, &g.Count); err != nil {
			return nil, r.internal("failed to scan group row of", err)
		}
		g.Total = mapping.FromMinorUnits(total)
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, r.internal("error iterating groups of", err)
	}
	return result, nil
}

// CountEntriesByGroup counts live entries per group.
func (r *EntryRepository) CountEntriesByGroup(ctx context.Context) ([]domain.GroupUsage, error) {
	q := r.queries.CountByGroup()
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, r.internal("failed to count groups of", err)
	}
	defer rows.Close()

	result := []domain.GroupUsage{}
	for rows.Next() {
		var u domain.GroupUsage
		if err := rows.Scan(&u.Key, &u.Count); err != nil {
			return nil, r.internal("failed to scan usage row of", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, r.internal("error iterating usage of", err)
	}
	return result, nil
}

// SaveEntry inserts entry and returns it with its new id.
func (r *EntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	q := r.queries.Insert(mapping.ToModelEntry(entry))
	res, err := r.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, r.internal("failed to insert into", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, r.internal("failed to read id from", err)
	}
	entry.ID = id
	entry.Kind = r.kind
	return &entry, nil
}

// UpdateEntry replaces the mutable fields of a live entry.
func (r *EntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	return r.execOne(ctx, r.queries.Update(mapping.ToModelEntry(entry)), entry.ID)
}

// TrashEntry soft-deletes a live entry.
func (r *EntryRepository) TrashEntry(ctx context.Context, id int64, at time.Time) error {
	return r.execOne(ctx, r.queries.Trash(id, at), id)
}

func (r *EntryRepository) execOne(ctx context.Context, q entryquery.Query, id int64) error {
	res, err := r.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return r.internal("failed to write", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r.internal("failed to read affected rows of", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found or already deleted", r.kind, id))
	}
	return nil
}

// TrashEntriesByGroup soft-deletes every live entry of group.
func (r *EntryRepository) TrashEntriesByGroup(ctx context.Context, group string, at time.Time) (int64, error) {
	q := r.queries.TrashByGroup(group, at)
	res, err := r.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return 0, r.internal("failed to trash group in", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.internal("failed to read affected rows of", err)
	}
	return n, nil
}

// replaceTx clears the table and inserts entries inside tx.
func (r *EntryRepository) replaceTx(ctx context.Context, tx *sql.Tx, entries []domain.Entry) error {
	if _, err := tx.ExecContext(ctx, r.queries.DeleteAll().SQL); err != nil {
		return r.internal("failed to clear", err)
	}
	for _, e := range entries {
		q := r.queries.Insert(mapping.ToModelEntry(e))
		if _, err := tx.ExecContext(ctx, q.SQL, q.Args...); err != nil {
			return r.internal("failed to restore into", err)
		}
	}
	return nil
}
