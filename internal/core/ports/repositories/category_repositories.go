package repositories

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// CategoryReader defines read operations over both taxonomies.
type CategoryReader interface {
	// ListCategories returns every category of kind, disabled ones included, ordered by name.
	ListCategories(ctx context.Context, kind domain.EntryKind) ([]domain.Category, error)
	// FindCategory returns apperrors.ErrNotFound when kind has no category called name.
	FindCategory(ctx context.Context, kind domain.EntryKind, name string) (*domain.Category, error)
	// ListAllCategories returns both taxonomies, expenses first, each ordered by name.
	ListAllCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriter defines mutations of the taxonomies.
type CategoryWriter interface {
	// SaveCategory inserts c. An existing kind/name pair is reported as apperrors.ErrDuplicate.
	SaveCategory(ctx context.Context, c domain.Category) error
	// SeedCategories inserts the categories that do not exist yet and reports how many were added.
	SeedCategories(ctx context.Context, cs []domain.Category) (int64, error)
	// UpdateCategory replaces label, icon, color and enabled. A missing
	// category is reported as apperrors.ErrNotFound.
	UpdateCategory(ctx context.Context, c domain.Category) error
	// DeleteCategory removes a custom category. Built-in and missing names are
	// reported as apperrors.ErrNotFound.
	DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) error
}

// CategoryRepositoryFacade combines every taxonomy operation.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}

// SnapshotStore swaps the whole dataset in one step.
type SnapshotStore interface {
	// ReplaceSnapshot physically clears expenses, incomes and categories, then
	// inserts the rows of snap. Either every table is replaced or none is.
	ReplaceSnapshot(ctx context.Context, snap domain.Snapshot) error
}
