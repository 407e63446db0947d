package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/pocket_ledger/internal/apperrors"
	"github.com/SscSPs/pocket_ledger/internal/core/domain"
	"github.com/SscSPs/pocket_ledger/internal/core/periods"
	portsrepo "github.com/SscSPs/pocket_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_ledger/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

// monthService serves the month-paged list views.
type monthService struct {
	BaseService
	repos  portsrepo.RepositoryProvider
	flight singleflight.Group
}

// MonthServiceOption is a functional option for configuring the month service
type MonthServiceOption func(*monthService)

// WithMonthClock sets the clock that decides which month is offset 0.
func WithMonthClock(clock Clock) MonthServiceOption {
	return func(s *monthService) {
		s.Clock = clock
	}
}

// NewMonthService creates a new month service with the provided options
func NewMonthService(repos portsrepo.RepositoryProvider, options ...MonthServiceOption) portssvc.MonthSvc {
	svc := &monthService{repos: repos}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MonthSvc = (*monthService)(nil)

// AvailableMonths walks backwards from the current month, jumping straight to
// the next populated month each time, so the number of store round-trips grows
// with the number of populated months rather than with the age of the data.
// Concurrent calls for the same kind share one walk.
func (s *monthService) AvailableMonths(ctx context.Context, kind domain.EntryKind) ([]domain.MonthAvailability, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	months, shared, err := shareFlight(ctx, &s.flight, "months:"+string(kind), func(ctx context.Context) ([]domain.MonthAvailability, error) {
		return s.walkMonths(ctx, repo)
	})
	if err != nil {
		s.LogError(ctx, err, "Month availability walk failed", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list %s months: %w", kind, err)
	}
	s.LogDebug(ctx, "Month availability computed",
		slog.String("kind", string(kind)),
		slog.Int("months", len(months)),
		slog.Bool("shared", shared))
	return months, nil
}

func (s *monthService) walkMonths(ctx context.Context, repo portsrepo.EntryReader) ([]domain.MonthAvailability, error) {
	now := s.Now()
	months := []domain.MonthAvailability{}

	offset := 0
	for {
		start, end := periods.MonthWindow(now, offset)

		count, err := repo.CountEntries(ctx, domain.EntryFilter{From: &start, To: &end})
		if err != nil {
			return nil, fmt.Errorf("count month %d: %w", offset, err)
		}
		if count > 0 {
			months = append(months, domain.MonthAvailability{
				OffsetMonth: offset,
				Label:       periods.MonthLabel(start),
				Count:       count,
			})
		}

		older, err := repo.FindNewestDateTime(ctx, domain.EntryFilter{Before: &start})
		if err != nil {
			return nil, fmt.Errorf("probe before month %d: %w", offset, err)
		}
		if older == nil {
			break
		}

		next := periods.MonthsBetween(now, periods.StartOfMonth(older.In(now.Location())))
		if next <= offset {
			return nil, fmt.Errorf("%w: month walk stalled at offset %d (next %d)", apperrors.ErrInternal, offset, next)
		}
		offset = next
	}

	sort.Slice(months, func(i, j int) bool { return months[i].OffsetMonth < months[j].OffsetMonth })
	return months, nil
}

// MonthPage returns every live entry of one calendar month, newest first, and
// whether anything older exists.
func (s *monthService) MonthPage(ctx context.Context, kind domain.EntryKind, offsetMonth int) (*domain.MonthPage, error) {
	repo, err := repoFor(s.repos, kind)
	if err != nil {
		return nil, err
	}
	if offsetMonth < 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("month offset must be non-negative, got %d", offsetMonth))
	}

	key := fmt.Sprintf("page:%s:%d", kind, offsetMonth)
	page, _, err := shareFlight(ctx, &s.flight, key, func(ctx context.Context) (domain.MonthPage, error) {
		return s.fetchMonth(ctx, repo, offsetMonth)
	})
	if err != nil {
		s.LogError(ctx, err, "Month page fetch failed", slog.String("kind", string(kind)), slog.Int("offset_month", offsetMonth))
		return nil, fmt.Errorf("failed to fetch %s for month %d: %w", kind.Plural(), offsetMonth, err)
	}
	return &page, nil
}

func (s *monthService) fetchMonth(ctx context.Context, repo portsrepo.EntryReader, offsetMonth int) (domain.MonthPage, error) {
	start, end := periods.MonthWindow(s.Now(), offsetMonth)

	entries, err := repo.ListEntries(ctx, domain.EntryFilter{From: &start, To: &end})
	if err != nil {
		return domain.MonthPage{}, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}

	hasMore, err := repo.ExistsEntry(ctx, domain.EntryFilter{Before: &start})
	if err != nil {
		return domain.MonthPage{}, err
	}

	return domain.MonthPage{
		Entries:     entries,
		HasMore:     hasMore,
		OffsetMonth: offsetMonth,
		MonthLabel:  periods.MonthLabel(start),
	}, nil
}
