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

// CategoryRepository stores both taxonomies in the categories table.
type CategoryRepository struct {
	db      *sql.DB
	queries entryquery.CategoryQueries
	loc     *time.Location
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

// NewCategoryRepository returns the taxonomy store on db.
func NewCategoryRepository(db *sql.DB, loc *time.Location) *CategoryRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &CategoryRepository{db: db, queries: entryquery.NewCategoryQueries(entryquery.SQLite), loc: loc}
}

func (r *CategoryRepository) scanCategory(row scanner) (models.Category, error) {
	var (
		m                    models.Category
		createdAt, updatedAt int64
	)
	if err := row.Scan(&m.Kind, &m.Name, &m.Label, &m.Icon, &m.Color, &m.Enabled, &m.IsCustom, &createdAt, &updatedAt); err != nil {
		return models.Category{}, err
	}
	m.CreatedAt = time.UnixMilli(createdAt).In(r.loc)
	m.UpdatedAt = time.UnixMilli(updatedAt).In(r.loc)
	return m, nil
}

func (r *CategoryRepository) internal(msg string, err error) error {
	return apperrors.NewAppError(http.StatusInternalServerError, msg, err)
}

// ListCategories returns the taxonomy of kind ordered by name.
func (r *CategoryRepository) ListCategories(ctx context.Context, kind domain.EntryKind) ([]domain.Category, error) {
	return r.list(ctx, r.queries.ListByKind(string(kind)))
}

// ListAllCategories returns both taxonomies.
func (r *CategoryRepository) ListAllCategories(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, r.queries.ListAll())
}

func (r *CategoryRepository) list(ctx context.Context, q entryquery.Query) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, r.internal("failed to list categories", err)
	}
	defer rows.Close()

	ms := []models.Category{}
	for rows.Next() {
		m, err := r.scanCategory(rows)
		if err != nil {
			return nil, r.internal("failed to scan category", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.internal("error iterating categories", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// FindCategory retrieves one category of kind.
func (r *CategoryRepository) FindCategory(ctx context.Context, kind domain.EntryKind, name string) (*domain.Category, error) {
	q := r.queries.Find(string(kind), name)
	m, err := r.scanCategory(r.db.QueryRowContext(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %q not found", kind.GroupLabel(), name))
		}
		return nil, r.internal("failed to read category", err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

// SaveCategory inserts c unless its name is taken.
func (r *CategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	n, err := r.insert(ctx, r.db, c)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NewDuplicateError(fmt.Sprintf("%s %q already exists", c.Kind.GroupLabel(), c.Name))
	}
	return nil
}

// SeedCategories inserts the categories that are missing.
func (r *CategoryRepository) SeedCategories(ctx context.Context, cs []domain.Category) (int64, error) {
	var added int64
	for _, c := range cs {
		n, err := r.insert(ctx, r.db, c)
		if err != nil {
			return added, err
		}
		added += n
	}
	return added, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *CategoryRepository) insert(ctx context.Context, db execer, c domain.Category) (int64, error) {
	q := r.queries.InsertIfMissing(mapping.ToModelCategory(c))
	res, err := db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return 0, r.internal("failed to insert category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.internal("failed to read affected rows of category insert", err)
	}
	return n, nil
}

// UpdateCategory replaces the editable fields of a category.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	return r.execOne(ctx, r.queries.Update(mapping.ToModelCategory(c)), c.Kind, c.Name)
}

// DeleteCategory removes a custom category.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) error {
	return r.execOne(ctx, r.queries.DeleteCustom(string(kind), name), kind, name)
}

func (r *CategoryRepository) execOne(ctx context.Context, q entryquery.Query, kind domain.EntryKind, name string) error {
	res, err := r.db.ExecContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return r.internal("failed to write category", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return r.internal("failed to read affected rows of category write", err)
	}
	if n == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("custom %s %q not found", kind.GroupLabel(), name))
	}
	return nil
}

// replaceTx clears both taxonomies and inserts cs inside tx.
func (r *CategoryRepository) replaceTx(ctx context.Context, tx *sql.Tx, cs []domain.Category) error {
	if _, err := tx.ExecContext(ctx, r.queries.DeleteAll().SQL); err != nil {
		return r.internal("failed to clear categories", err)
	}
	for _, c := range cs {
		if _, err := r.insert(ctx, tx, c); err != nil {
			return err
		}
	}
	return nil
}
