package services

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// EntryReaderSvc defines read operations on single entries.
type EntryReaderSvc interface {
	// GetEntry parses id and returns the live entry it names.
	GetEntry(ctx context.Context, kind domain.EntryKind, id string) (*domain.Entry, error)
	// GroupUsage counts live entries per category (expenses) or source (incomes).
	GroupUsage(ctx context.Context, kind domain.EntryKind) ([]domain.GroupUsage, error)
}

// EntryWriterSvc defines the ledger mutators.
type EntryWriterSvc interface {
	CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error)
	// UpdateEntry replaces every mutable field. An update identical to the
	// stored entry fails with apperrors.ErrNoChange.
	UpdateEntry(ctx context.Context, kind domain.EntryKind, id string, req dto.UpdateEntryRequest) (*domain.Entry, error)
	// TrashEntry soft-deletes; missing or already trashed ids fail with apperrors.ErrNotFound.
	TrashEntry(ctx context.Context, kind domain.EntryKind, id string) error
	// TrashGroup soft-deletes every live entry of group and returns how many changed.
	TrashGroup(ctx context.Context, kind domain.EntryKind, group string) (int64, error)
}

// EntrySvcFacade combines all entry operations.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}

// MonthSvc serves the month-paged list views.
type MonthSvc interface {
	// AvailableMonths lists the calendar months holding live entries, ascending by offset.
	AvailableMonths(ctx context.Context, kind domain.EntryKind) ([]domain.MonthAvailability, error)
	// MonthPage returns every live entry of the month offsetMonth months back.
	MonthPage(ctx context.Context, kind domain.EntryKind, offsetMonth int) (*domain.MonthPage, error)
}

// StatsSvc aggregates entries over period windows.
type StatsSvc interface {
	PeriodStats(ctx context.Context, kind domain.EntryKind, period domain.Period) (*domain.PeriodStats, error)
}

// OverviewSvc combines expense and income statistics.
type OverviewSvc interface {
	FinancialOverview(ctx context.Context, period domain.Period) (*domain.FinancialOverview, error)
}

// BackupSvc is the bulk export and restore collaborator.
type BackupSvc interface {
	ExportSnapshot(ctx context.Context) (*domain.Snapshot, error)
	// RestoreSnapshot validates every row, then replaces both ledgers.
	RestoreSnapshot(ctx context.Context, req dto.RestoreRequest) (*domain.Snapshot, error)
}

// CategorySvc manages the expense categories and income sources entries are grouped by.
type CategorySvc interface {
	// ListCategories returns the taxonomy of kind, ordered by name or by live usage.
	ListCategories(ctx context.Context, kind domain.EntryKind, q dto.CategoryListQuery) ([]domain.Category, error)
	// CreateCategory adds an enabled custom category. A taken name fails with apperrors.ErrDuplicate.
	CreateCategory(ctx context.Context, kind domain.EntryKind, req dto.CreateCategoryRequest) (*domain.Category, error)
	// UpdateCategory patches label, icon, color or enabled. A patch that changes
	// nothing fails with apperrors.ErrNoChange.
	UpdateCategory(ctx context.Context, kind domain.EntryKind, name string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory removes a custom category and trashes its live entries,
	// returning how many were trashed. Built-in ones can only be disabled.
	DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) (int64, error)
	// SeedDefaults adds the built-in categories that are missing.
	SeedDefaults(ctx context.Context) (int64, error)
}
