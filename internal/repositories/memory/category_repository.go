package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
)

// CategoryRepository keeps both taxonomies in a slice guarded by a mutex.
type CategoryRepository struct {
	mu    sync.RWMutex
	items []domain.Category
}

var _ portsrepo.CategoryRepositoryFacade = (*CategoryRepository)(nil)

// NewCategoryRepository returns an empty taxonomy store.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// indexLocked returns the position of kind/name, -1 when absent.
func (r *CategoryRepository) indexLocked(kind domain.EntryKind, name string) int {
	for i, c := range r.items {
		if c.Kind == kind && c.Name == name {
			return i
		}
	}
	return -1
}

func sortCategories(cs []domain.Category) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Kind != cs[j].Kind {
			return cs[i].Kind < cs[j].Kind
		}
		return cs[i].Name < cs[j].Name
	})
}

// ListCategories returns the taxonomy of kind ordered by name.
func (r *CategoryRepository) ListCategories(_ context.Context, kind domain.EntryKind) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Category{}
	for _, c := range r.items {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	sortCategories(out)
	return out, nil
}

// ListAllCategories returns both taxonomies, expenses first.
func (r *CategoryRepository) ListAllCategories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]domain.Category{}, r.items...)
	sortCategories(out)
	return out, nil
}

// FindCategory retrieves one category of kind.
func (r *CategoryRepository) FindCategory(_ context.Context, kind domain.EntryKind, name string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(kind, name); i >= 0 {
		c := r.items[i]
		return &c, nil
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s %q not found", kind.GroupLabel(), name))
}

// SaveCategory inserts c unless its name is taken.
func (r *CategoryRepository) SaveCategory(_ context.Context, c domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexLocked(c.Kind, c.Name) >= 0 {
		return apperrors.NewDuplicateError(fmt.Sprintf("%s %q already exists", c.Kind.GroupLabel(), c.Name))
	}
	r.items = append(r.items, c)
	return nil
}

// SeedCategories inserts the categories that are missing.
func (r *CategoryRepository) SeedCategories(_ context.Context, cs []domain.Category) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var added int64
	for _, c := range cs {
		if r.indexLocked(c.Kind, c.Name) < 0 {
			r.items = append(r.items, c)
			added++
		}
	}
	return added, nil
}

// UpdateCategory replaces the editable fields of a category.
func (r *CategoryRepository) UpdateCategory(_ context.Context, c domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(c.Kind, c.Name)
	if i < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %q not found", c.Kind.GroupLabel(), c.Name))
	}
	stored := &r.items[i]
	stored.Label = c.Label
	stored.Icon = c.Icon
	stored.Color = c.Color
	stored.Enabled = c.Enabled
	stored.UpdatedAt = c.UpdatedAt
	return nil
}

// DeleteCategory removes a custom category.
func (r *CategoryRepository) DeleteCategory(_ context.Context, kind domain.EntryKind, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(kind, name)
	if i < 0 || !r.items[i].IsCustom {
		return apperrors.NewNotFoundError(fmt.Sprintf("custom %s %q not found", kind.GroupLabel(), name))
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// replaceLocked swaps both taxonomies for cs. The caller holds r.mu.
func (r *CategoryRepository) replaceLocked(cs []domain.Category) {
	r.items = append([]domain.Category{}, cs...)
}
