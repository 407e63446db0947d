package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
)

// Every read below excludes trashed entries. Implementations build their
// predicates through a shared helper so the filter cannot be forgotten.

// EntryReader defines read operations over one ledger kind.
type EntryReader interface {
	// FindEntryByID returns apperrors.ErrNotFound for missing or trashed ids.
	FindEntryByID(ctx context.Context, id int64) (*domain.Entry, error)
	// ListEntries returns the entries matching filter, newest dateTime first.
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	CountEntries(ctx context.Context, filter domain.EntryFilter) (int, error)
	// ExistsEntry is a limit-1 probe, not a count.
	ExistsEntry(ctx context.Context, filter domain.EntryFilter) (bool, error)
	// FindNewestDateTime returns the largest dateTime matching filter, nil when none match.
	FindNewestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error)
	// FindOldestDateTime returns the smallest dateTime matching filter, nil when none match.
	FindOldestDateTime(ctx context.Context, filter domain.EntryFilter) (*time.Time, error)
}

// EntryAggregator defines the analytic queries over one ledger kind.
type EntryAggregator interface {
	// AggregateEntries computes SUM, COUNT, MAX and MIN in one pass. Empty sets yield zeros.
	AggregateEntries(ctx context.Context, filter domain.EntryFilter) (domain.EntryAggregate, error)
	// AggregateEntriesByGroup returns SUM and COUNT per group ordered by total
	// descending, ties broken by group key ascending.
	AggregateEntriesByGroup(ctx context.Context, filter domain.EntryFilter) ([]domain.GroupStat, error)
	// CountEntriesByGroup returns usage counts per group, most used first.
	CountEntriesByGroup(ctx context.Context) ([]domain.GroupUsage, error)
}

// EntryWriter defines mutations over one ledger kind.
type EntryWriter interface {
	// SaveEntry inserts entry and returns it with its assigned id.
	SaveEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
	// UpdateEntry replaces every mutable field of a live entry. Zero rows
	// affected is reported as apperrors.ErrNotFound.
	UpdateEntry(ctx context.Context, entry domain.Entry) error
	// TrashEntry flips the soft-delete flag. Zero rows affected (missing or
	// already trashed) is reported as apperrors.ErrNotFound.
	TrashEntry(ctx context.Context, id int64, at time.Time) error
	// TrashEntriesByGroup trashes every live entry of group and reports how many changed.
	TrashEntriesByGroup(ctx context.Context, group string, at time.Time) (int64, error)
}

// EntryBulkStore serves the backup export. Restores go through SnapshotStore.
type EntryBulkStore interface {
	// ListAllEntries returns every live entry, oldest first.
	ListAllEntries(ctx context.Context) ([]domain.Entry, error)
}

// EntryRepositoryFacade combines every operation a ledger store offers.
type EntryRepositoryFacade interface {
	EntryReader
	EntryAggregator
	EntryWriter
	EntryBulkStore
}
