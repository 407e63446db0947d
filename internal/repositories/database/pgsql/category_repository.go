package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_ledger/internal/models"
	"github.com/SscSPs/pocket_ledger/internal/repositories/database/entryquery"
	"github.com/SscSPs/pocket_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCategoryRepository stores both taxonomies in the categories table.
type PgxCategoryRepository struct {
	BaseRepository
	queries entryquery.CategoryQueries
}

// newPgxCategoryRepository creates the taxonomy store on pool.
func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		queries:        entryquery.NewCategoryQueries(entryquery.Postgres),
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (models.Category, error) {
	var m models.Category
	err := row.Scan(&m.Kind, &m.Name, &m.Label, &m.Icon, &m.Color, &m.Enabled, &m.IsCustom, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// ListCategories returns the taxonomy of kind ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, kind domain.EntryKind) ([]domain.Category, error) {
	return r.list(ctx, r.queries.ListByKind(string(kind)))
}

// ListAllCategories returns both taxonomies.
func (r *PgxCategoryRepository) ListAllCategories(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, r.queries.ListAll())
}

func (r *PgxCategoryRepository) list(ctx context.Context, q entryquery.Query) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list categories", err)
	}
	defer rows.Close()

	ms := []models.Category{}
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan category", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating categories", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

// FindCategory retrieves one category of kind.
func (r *PgxCategoryRepository) FindCategory(ctx context.Context, kind domain.EntryKind, name string) (*domain.Category, error) {
	q := r.queries.Find(string(kind), name)
	m, err := scanCategory(r.Pool.QueryRow(ctx, q.SQL, q.Args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %q not found", kind.GroupLabel(), name))
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find category", err)
	}
	c := mapping.ToDomainCategory(m)
	return &c, nil
}

// SaveCategory inserts c unless its name is taken.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	q := r.queries.InsertIfMissing(mapping.ToModelCategory(c))
	cmdTag, err := r.Pool.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewDuplicateError(fmt.Sprintf("%s %q already exists", c.Kind.GroupLabel(), c.Name))
	}
	return nil
}

// SeedCategories inserts the missing categories in one batch.
func (r *PgxCategoryRepository) SeedCategories(ctx context.Context, cs []domain.Category) (int64, error) {
	if len(cs) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, c := range cs {
		q := r.queries.InsertIfMissing(mapping.ToModelCategory(c))
		batch.Queue(q.SQL, q.Args...)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	var added int64
	for range cs {
		cmdTag, err := results.Exec()
		if err != nil {
			return added, apperrors.NewAppError(http.StatusInternalServerError, "failed to seed categories", err)
		}
		added += cmdTag.RowsAffected()
	}
	return added, nil
}

// UpdateCategory replaces the editable fields of a category.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, c domain.Category) error {
	return r.execOne(ctx, r.queries.Update(mapping.ToModelCategory(c)), c.Kind, c.Name)
}

// DeleteCategory removes a custom category.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) error {
	return r.execOne(ctx, r.queries.DeleteCustom(string(kind), name), kind, name)
}

func (r *PgxCategoryRepository) execOne(ctx context.Context, q entryquery.Query, kind domain.EntryKind, name string) error {
	cmdTag, err := r.Pool.Exec(ctx, q.SQL, q.Args...)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to write category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("custom %s %q not found", kind.GroupLabel(), name))
	}
	return nil
}
