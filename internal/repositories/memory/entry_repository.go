// Package memory is an in-process ledger store. It backs the "memory" data
// backend and doubles as a fake for service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// EntryRepository keeps one ledger kind in a slice guarded by a mutex.
type EntryRepository struct {
	mu      sync.RWMutex
	kind    domain.EntryKind
	nextID  int64
	entries []domain.Entry
}

var _ portsrepo.EntryRepositoryFacade = (*EntryRepository)(nil)

// NewEntryRepository returns an empty store for kind.
func NewEntryRepository(kind domain.EntryKind) *EntryRepository {
	return &EntryRepository{kind: kind}
}

// NewRepositoryProvider returns empty stores.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	expenses := NewEntryRepository(domain.KindExpense)
	incomes := NewEntryRepository(domain.KindIncome)
	categories := NewCategoryRepository()
	return portsrepo.RepositoryProvider{
		ExpenseRepo:  expenses,
		IncomeRepo:   incomes,
		CategoryRepo: categories,
		Snapshots:    &SnapshotStore{expenses: expenses, incomes: incomes, categories: categories},
	}
}

func matches(e domain.Entry, f domain.EntryFilter) bool {
	if e.IsTrashed {
		return false
	}
	if f.From != nil && e.DateTime.Before(*f.From) {
		return false
	}
	if f.To != nil && e.DateTime.After(*f.To) {
		return false
	}
	if f.Before != nil && !e.DateTime.Before(*f.Before) {
		return false
	}
	return true
}

// live returns copies of the live entries matching f, in insertion order.
func (r *EntryRepository) live(f domain.EntryFilter) []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Entry
	for _, e := range r.entries {
		if matches(e, f) {
			out = append(out, e)
		}
	}
	return out
}

func (r *EntryRepository) notFound(id int64) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found or already deleted", r.kind, id))
}

// FindEntryByID retrieves a live entry by id.
func (r *EntryRepository) FindEntryByID(_ context.Context, id int64) (*domain.Entry, error) {
	for _, e := range r.live(domain.EntryFilter{}) {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %d not found", r.kind, id))
}

// ListEntries returns live entries matching filter, newest first.
func (r *EntryRepository) ListEntries(_ context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	out := r.live(filter)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].ID > out[j].ID
		}
		return out[i].DateTime.After(out[j].DateTime)
	})
	return out, nil
}

// ListAllEntries returns every live entry, oldest first.
func (r *EntryRepository) ListAllEntries(_ context.Context) ([]domain.Entry, error) {
	out := r.live(domain.EntryFilter{})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DateTime.Equal(out[j].DateTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out, nil
}

// CountEntries counts live entries matching filter.
func (r *EntryRepository) CountEntries(_ context.Context, filter domain.EntryFilter) (int, error) {
	return len(r.live(filter)), nil
}

// ExistsEntry reports whether any live entry matches filter.
func (r *EntryRepository) ExistsEntry(_ context.Context, filter domain.EntryFilter) (bool, error) {
	return len(r.live(filter)) > 0, nil
}

// FindNewestDateTime returns the latest dateTime matching filter.
func (r *EntryRepository) FindNewestDateTime(_ context.Context, filter domain.EntryFilter) (*time.Time, error) {
	var newest *time.Time
	for _, e := range r.live(filter) {
		if newest == nil || e.DateTime.After(*newest) {
			t := e.DateTime
			newest = &t
		}
	}
	return newest, nil
}

// FindOldestDateTime returns the earliest dateTime matching filter.
func (r *EntryRepository) FindOldestDateTime(_ context.Context, filter domain.EntryFilter) (*time.Time, error) {
	var oldest *time.Time
	for _, e := range r.live(filter) {
		if oldest == nil || e.DateTime.Before(*oldest) {
			t := e.DateTime
			oldest = &t
		}
	}
	return oldest, nil
}

// AggregateEntries computes SUM, COUNT, MAX and MIN over filter.
func (r *EntryRepository) AggregateEntries(_ context.Context, filter domain.EntryFilter) (domain.EntryAggregate, error) {
	agg := domain.EntryAggregate{}
	for i, e := range r.live(filter) {
		agg.Total = agg.Total.Add(e.Amount)
		agg.Count++
		if i == 0 || e.Amount.GreaterThan(agg.Max) {
			agg.Max = e.Amount
		}
		if i == 0 || e.Amount.LessThan(agg.Min) {
			agg.Min = e.Amount
		}
	}
	return agg, nil
}

// AggregateEntriesByGroup computes SUM and COUNT per group, largest total first.
func (r *EntryRepository) AggregateEntriesByGroup(_ context.Context, filter domain.EntryFilter) ([]domain.GroupStat, error) {
	byKey := map[string]*domain.GroupStat{}
	for _, e := range r.live(filter) {
		g, ok := byKey[e.Group]
		if !ok {
			g = &domain.GroupStat{Key: e.Group, Total: decimal.Zero}
			byKey[e.Group] = g
		}
		g.Total = g.Total.Add(e.Amount)
		g.Count++
	}
	out := make([]domain.GroupStat, 0, len(byKey))
	for _, g := range byKey {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// CountEntriesByGroup counts live entries per group, most used first.
func (r *EntryRepository) CountEntriesByGroup(_ context.Context) ([]domain.GroupUsage, error) {
	counts := map[string]int{}
	for _, e := range r.live(domain.EntryFilter{}) {
		counts[e.Group]++
	}
	out := make([]domain.GroupUsage, 0, len(counts))
	for k, n := range counts {
		out = append(out, domain.GroupUsage{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

// SaveEntry appends entry with the next id.
func (r *EntryRepository) SaveEntry(_ context.Context, entry domain.Entry) (*domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	entry.ID = r.nextID
	entry.Kind = r.kind
	r.entries = append(r.entries, entry)
	return &entry, nil
}

// UpdateEntry replaces the mutable fields of a live entry.
func (r *EntryRepository) UpdateEntry(_ context.Context, entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.ID != entry.ID || e.IsTrashed {
			continue
		}
		e.Amount = entry.Amount
		e.DateTime = entry.DateTime
		e.Group = entry.Group
		e.Description = entry.Description
		e.PaymentMethod = entry.PaymentMethod
		e.Receipt = entry.Receipt
		e.Currency = entry.Currency
		e.UpdatedAt = entry.UpdatedAt
		return nil
	}
	return r.notFound(entry.ID)
}

// TrashEntry soft-deletes a live entry.
func (r *EntryRepository) TrashEntry(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		e := &r.entries[i]
		if e.ID == id && !e.IsTrashed {
			e.IsTrashed = true
			e.UpdatedAt = at
			return nil
		}
	}
	return r.notFound(id)
}

// TrashEntriesByGroup soft-deletes every live entry of group.
func (r *EntryRepository) TrashEntriesByGroup(_ context.Context, group string, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.entries {
		e := &r.entries[i]
		if e.Group == group && !e.IsTrashed {
			e.IsTrashed = true
			e.UpdatedAt = at
			n++
		}
	}
	return n, nil
}

// replaceLocked drops every row, trashed or not, and stores entries with
// fresh ids. The caller holds r.mu.
func (r *EntryRepository) replaceLocked(entries []domain.Entry) {
	r.entries = make([]domain.Entry, 0, len(entries))
	for _, e := range entries {
		r.nextID++
		e.ID = r.nextID
		e.Kind = r.kind
		r.entries = append(r.entries, e)
	}
}
