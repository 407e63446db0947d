package services

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

type categoryService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

// CategoryServiceOption is a functional option for configuring the category service
type CategoryServiceOption func(*categoryService)

// WithCategoryClock sets the clock used for audit timestamps.
func WithCategoryClock(clock Clock) CategoryServiceOption {
	return func(s *categoryService) {
		s.Clock = clock
	}
}

// NewCategoryService creates the taxonomy service.
func NewCategoryService(repos portsrepo.RepositoryProvider, options ...CategoryServiceOption) portssvc.CategorySvc {
	svc := &categoryService{repos: repos}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

// ListCategories returns the taxonomy of kind. Usage order puts the most
// referenced first and keeps name order among ties.
func (s *categoryService) ListCategories(ctx context.Context, kind domain.EntryKind, q dto.CategoryListQuery) ([]domain.Category, error) {
	entries, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	all, err := s.repos.CategoryRepo.ListCategories(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s taxonomy: %w", kind.GroupLabel(), err)
	}

	out := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if c.Enabled || q.IncludeDisabled {
			out = append(out, c)
		}
	}

	if q.Sort == dto.CategorySortUsage {
		usage, err := entries.CountEntriesByGroup(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s usage: %w", kind.GroupLabel(), err)
		}
		counts := make(map[string]int, len(usage))
		for _, u := range usage {
			counts[u.Key] = u.Count
		}
		slices.SortStableFunc(out, func(a, b domain.Category) int {
			return cmp.Compare(counts[b.Name], counts[a.Name])
		})
	}
	return out, nil
}

// CreateCategory adds a custom category of kind.
func (s *categoryService) CreateCategory(ctx context.Context, kind domain.EntryKind, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown entry kind %q", kind))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	c := newCategory(kind, name, req.Label, req.Icon, req.Color)
	c.IsCustom = true
	now := s.Now()
	c.AuditFields = domain.AuditFields{CreatedAt: now, UpdatedAt: now}

	if err := s.repos.CategoryRepo.SaveCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create %s %q: %w", kind.GroupLabel(), name, err)
	}
	s.LogInfo(ctx, "Category created", slog.String("kind", string(kind)), slog.String("name", name))
	return &c, nil
}

// UpdateCategory applies the non-nil fields of req.
func (s *categoryService) UpdateCategory(ctx context.Context, kind domain.EntryKind, name string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	current, err := s.find(ctx, kind, name)
	if err != nil {
		return nil, err
	}

	next := *current
	if req.Label != nil {
		next.Label = strings.TrimSpace(*req.Label)
	}
	if req.Icon != nil {
		next.Icon = strings.TrimSpace(*req.Icon)
	}
	if req.Color != nil {
		next.Color = strings.TrimSpace(*req.Color)
	}
	if req.Enabled != nil {
		next.Enabled = *req.Enabled
	}
	if next.Label == "" {
		return nil, apperrors.NewValidationError("label must not be empty")
	}
	if next.SameContent(*current) {
		return nil, apperrors.NewNoChangeError(fmt.Sprintf("%s %q is unchanged", kind.GroupLabel(), current.Name))
	}

	next.UpdatedAt = s.Now()
	if err := s.repos.CategoryRepo.UpdateCategory(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to update %s %q: %w", kind.GroupLabel(), next.Name, err)
	}
	s.LogInfo(ctx, "Category updated",
		slog.String("kind", string(kind)),
		slog.String("name", next.Name),
		slog.Bool("enabled", next.Enabled))
	return &next, nil
}

// DeleteCategory removes a custom category first and then trashes its entries,
// so a failed trash never leaves entries hidden under a category that still exists.
func (s *categoryService) DeleteCategory(ctx context.Context, kind domain.EntryKind, name string) (int64, error) {
	entries, err := repoFor(s.repos, kind)
	if err != nil {
		return 0, err
	}
	c, err := s.find(ctx, kind, name)
	if err != nil {
		return 0, err
	}
	if !c.IsCustom {
		return 0, apperrors.NewValidationError(fmt.Sprintf("built-in %s %q can only be disabled", kind.GroupLabel(), c.Name))
	}

	if err := s.repos.CategoryRepo.DeleteCategory(ctx, kind, c.Name); err != nil {
		return 0, fmt.Errorf("failed to delete %s %q: %w", kind.GroupLabel(), c.Name, err)
	}
	n, err := entries.TrashEntriesByGroup(ctx, c.Name, s.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to trash %s of %s %q: %w", kind.Plural(), kind.GroupLabel(), c.Name, err)
	}
	s.LogInfo(ctx, "Category deleted",
		slog.String("kind", string(kind)),
		slog.String("name", c.Name),
		slog.Int64("trashed", n))
	return n, nil
}

// SeedDefaults inserts the missing built-in categories of both kinds.
func (s *categoryService) SeedDefaults(ctx context.Context) (int64, error) {
	defaults := stampCategories(s.Now(),
		domain.DefaultCategories(domain.KindExpense),
		domain.DefaultCategories(domain.KindIncome))
	n, err := s.repos.CategoryRepo.SeedCategories(ctx, defaults)
	if err != nil {
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}
	if n > 0 {
		s.LogInfo(ctx, "Default categories seeded", slog.Int64("added", n))
	}
	return n, nil
}

func (s *categoryService) find(ctx context.Context, kind domain.EntryKind, name string) (*domain.Category, error) {
	if !kind.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown entry kind %q", kind))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	c, err := s.repos.CategoryRepo.FindCategory(ctx, kind, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s %q: %w", kind.GroupLabel(), name, err)
	}
	return c, nil
}

// newCategory builds an enabled built-in category, filling the look it lacks.
func newCategory(kind domain.EntryKind, name, label, icon, color string) domain.Category {
	c := domain.Category{
		Kind:    kind,
		Name:    name,
		Label:   strings.TrimSpace(label),
		Icon:    strings.TrimSpace(icon),
		Color:   strings.TrimSpace(color),
		Enabled: true,
	}
	if c.Label == "" {
		c.Label = name
	}
	if c.Icon == "" {
		c.Icon = domain.DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = domain.DefaultCategoryColor
	}
	return c
}

func stampCategories(now time.Time, lists ...[]domain.Category) []domain.Category {
	var out []domain.Category
	for _, list := range lists {
		for _, c := range list {
			c.AuditFields = domain.AuditFields{CreatedAt: now, UpdatedAt: now}
			out = append(out, c)
		}
	}
	return out
}
