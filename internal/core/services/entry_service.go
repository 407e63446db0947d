package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"github.com/SscSPs/pocket_ledger/internal/dto"
)

// entryService implements the ledger mutators and single-entry reads.
type entryService struct {
	BaseService
	repos           portsrepo.RepositoryProvider
	defaultCurrency string
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryService)

// WithEntryClock sets the clock used for audit timestamps.
func WithEntryClock(clock Clock) EntryServiceOption {
	return func(s *entryService) {
		s.Clock = clock
	}
}

// WithDefaultCurrency sets the currency used when a request names none.
func WithDefaultCurrency(code string) EntryServiceOption {
	return func(s *entryService) {
		s.defaultCurrency = strings.ToUpper(code)
	}
}

// NewEntryService creates a new entry service with the provided options
func NewEntryService(repos portsrepo.RepositoryProvider, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		repos:           repos,
		defaultCurrency: domain.DefaultCurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry validates req and records a new entry.
func (s *entryService) CreateEntry(ctx context.Context, kind domain.EntryKind, req dto.CreateEntryRequest) (*domain.Entry, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	entry, err := buildEntry(kind, req, s.defaultCurrency, s.Now())
	if err != nil {
		return nil, err
	}

	saved, err := repo.SaveEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to save %s: %w", kind, err)
	}

	s.LogInfo(ctx, "Entry created",
		slog.String("kind", string(kind)),
		slog.Int64("entry_id", saved.ID),
		slog.String(kind.GroupLabel(), saved.Group))
	return saved, nil
}

// GetEntry returns the live entry named by id.
func (s *entryService) GetEntry(ctx context.Context, kind domain.EntryKind, id string) (*domain.Entry, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(id)
	if err != nil {
		return nil, err
	}
	entry, err := repo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", kind, entryID, err)
	}
	return entry, nil
}

// UpdateEntry replaces every mutable field of a live entry.
func (s *entryService) UpdateEntry(ctx context.Context, kind domain.EntryKind, id string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(id)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	updated, err := buildEntry(kind, req, s.defaultCurrency, now)
	if err != nil {
		return nil, err
	}

	existing, err := repo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %d: %w", kind, entryID, err)
	}
	if existing.SameContent(updated) {
		return nil, apperrors.NewNoChangeError(fmt.Sprintf("%s %d is unchanged", kind, entryID))
	}

	updated.ID = entryID
	updated.CreatedAt = existing.CreatedAt
	if err := repo.UpdateEntry(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("kind", string(kind)), slog.Int64("entry_id", entryID))
		return nil, fmt.Errorf("failed to update %s %d: %w", kind, entryID, err)
	}

	s.LogInfo(ctx, "Entry updated", slog.String("kind", string(kind)), slog.Int64("entry_id", entryID))
	return &updated, nil
}

// TrashEntry soft-deletes a live entry.
func (s *entryService) TrashEntry(ctx context.Context, kind domain.EntryKind, id string) error {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return err
	}
	entryID, err := parseEntryID(id)
	if err != nil {
		return err
	}
	if err := repo.TrashEntry(ctx, entryID, s.Now()); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", kind, entryID, err)
	}
	s.LogInfo(ctx, "Entry moved to trash", slog.String("kind", string(kind)), slog.Int64("entry_id", entryID))
	return nil
}

// TrashGroup soft-deletes every live entry of a category or source.
func (s *entryService) TrashGroup(ctx context.Context, kind domain.EntryKind, group string) (int64, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return 0, err
	}
	group = strings.TrimSpace(group)
	if group == "" {
		return 0, apperrors.NewValidationError(kind.GroupLabel() + " is required")
	}
	n, err := repo.TrashEntriesByGroup(ctx, group, s.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s of %s %q: %w", kind.Plural(), kind.GroupLabel(), group, err)
	}
	s.LogInfo(ctx, "Group moved to trash",
		slog.String("kind", string(kind)),
		slog.String(kind.GroupLabel(), group),
		slog.Int64("trashed", n))
	return n, nil
}

// GroupUsage counts live entries per category or source.
func (s *entryService) GroupUsage(ctx context.Context, kind domain.EntryKind) ([]domain.GroupUsage, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	usage, err := repo.CountEntriesByGroup(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s usage: %w", kind.GroupLabel(), err)
	}
	return usage, nil
}
