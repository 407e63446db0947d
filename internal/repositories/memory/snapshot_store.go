package memory

import (
	"context"

	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

// SnapshotStore swaps every in-memory table while holding all their locks, so
// readers see either the old dataset or the new one.
type SnapshotStore struct {
	expenses   *EntryRepository
	incomes    *EntryRepository
	categories *CategoryRepository
}

var _ portsrepo.SnapshotStore = (*SnapshotStore)(nil)

// ReplaceSnapshot replaces both ledgers and both taxonomies with snap.
func (s *SnapshotStore) ReplaceSnapshot(_ context.Context, snap domain.Snapshot) error {
	// fixed lock order: expenses, incomes, categories
	s.expenses.mu.Lock()
	defer s.expenses.mu.Unlock()
	s.incomes.mu.Lock()
	defer s.incomes.mu.Unlock()
	s.categories.mu.Lock()
	defer s.categories.mu.Unlock()

	s.expenses.replaceLocked(snap.Expenses)
	s.incomes.replaceLocked(snap.Incomes)
	s.categories.replaceLocked(snap.Categories)
	return nil
}
